package fixture

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slashdevops/distprobe"
)

func run(t *testing.T, v Variant) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, v.Run(&buf))

	return buf.String()
}

func TestGeneratedOnlyOutput(t *testing.T) {
	want := "e2e.dist.exe-install-to-bin = 1\n" +
		"e2e.dist.packages-generated-src = 1\n"

	if diff := cmp.Diff(want, run(t, GeneratedOnly)); diff != "" {
		t.Errorf("GeneratedOnly output mismatch (-want +got):\n%s", diff)
	}
}

func TestVariantsIdempotent(t *testing.T) {
	for _, v := range Variants {
		t.Run(v.Name, func(t *testing.T) {
			assert.Equal(t, run(t, v), run(t, v))
		})
	}
}

func TestDistExtendsGeneratedOnly(t *testing.T) {
	assert.Equal(t, GeneratedOnly.Keys(), Dist.Keys()[:len(GeneratedOnly.Keys())])
	assert.Len(t, Dist.Keys(), 8)
}

func TestFailingCheckPrintsZero(t *testing.T) {
	v := Variant{
		Name:      "broken",
		Namespace: "e2e.test",
		Checks: []Check{
			{Name: "ok", Passes: func() bool { return true }},
			{Name: "broken", Passes: func() bool { return false }},
		},
	}

	assert.Equal(t, "e2e.test.ok = 1\ne2e.test.broken = 0\n", run(t, v))
	assert.False(t, v.Report().Passed())
}

func TestRunWithoutNamespace(t *testing.T) {
	v := Variant{Checks: []Check{{Name: "a.b", Passes: func() bool { return true }}}}
	assert.Equal(t, []string{"a.b"}, v.Keys())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestRunWriteError(t *testing.T) {
	assert.Error(t, Dist.Run(failingWriter{}))
}

func TestLookup(t *testing.T) {
	v, ok := Lookup("e1")
	require.True(t, ok)
	assert.Equal(t, Dist.Keys(), v.Keys())

	_, ok = Lookup("e9")
	assert.False(t, ok)
}

func keysOf(lines []distprobe.Line) []string {
	keys := make([]string, 0, len(lines))
	for _, l := range lines {
		keys = append(keys, l.Key)
	}

	return keys
}
