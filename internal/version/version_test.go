package version

import (
	"strings"
	"testing"
)

func TestShortStamped(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })
	Version = "1.2.3"

	if got, want := Short("mkuuid"), "mkuuid version: 1.2.3"; got != want {
		t.Errorf("Short() = %q, want %q", got, want)
	}
}

func TestLongStamped(t *testing.T) {
	oldVersion, oldCommit := Version, GitCommit
	t.Cleanup(func() { Version, GitCommit = oldVersion, oldCommit })
	Version = "1.2.3"
	GitCommit = "abc123"

	got := Long("distprobe")
	for _, want := range []string{"distprobe version: 1.2.3", "Git commit: abc123", "Go version: "} {
		if !strings.Contains(got, want) {
			t.Errorf("Long() = %q, missing %q", got, want)
		}
	}
}
