//go:build nosecret

package fixture

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slashdevops/distprobe"
)

func TestDistWithoutPrivateDefinitions(t *testing.T) {
	lines, err := distprobe.Parse(bytes.NewBufferString(run(t, Dist)))
	require.NoError(t, err)
	require.Equal(t, Dist.Keys(), keysOf(lines))

	privateKeys := map[string]bool{
		Namespace + "." + CheckIncludesPrivate: true,
		Namespace + "." + CheckCopiesPrivate:   true,
	}
	for _, l := range lines {
		want := 1
		if privateKeys[l.Key] {
			want = 0
		}
		assert.Equal(t, want, l.Value, "%s", l.Key)
	}

	err = distprobe.Verify(lines, Dist.Keys())
	require.ErrorIs(t, err, distprobe.ErrCheckFailed)

	var failed []string
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var checkErr *distprobe.CheckError
		require.True(t, errors.As(e, &checkErr))
		assert.ErrorIs(t, checkErr, distprobe.ErrCheckFailed)
		failed = append(failed, checkErr.Key)
	}
	assert.Equal(t, []string{
		Namespace + "." + CheckIncludesPrivate,
		Namespace + "." + CheckCopiesPrivate,
	}, failed)
}

func TestGeneratedOnlyUnaffectedWithoutPrivateDefinitions(t *testing.T) {
	lines, err := distprobe.Parse(bytes.NewBufferString(run(t, GeneratedOnly)))
	require.NoError(t, err)
	assert.NoError(t, distprobe.Verify(lines, GeneratedOnly.Keys()))
}
