// Package version provides build-time metadata for the command-line tools.
//
// All variables have sensible defaults and can be overridden at build time
// using -ldflags:
//
//	go build -ldflags "\
//	  -X 'github.com/slashdevops/distprobe/internal/version.Version=1.0.0' \
//	  -X 'github.com/slashdevops/distprobe/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)'"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the current version of the application
	Version = "0.0.0"

	// BuildDate is the date the application was built
	BuildDate = "1970-01-01T00:00:00Z"

	// GitCommit is the commit hash the application was built from
	GitCommit = ""

	// GitBranch is the branch the application was built from
	GitBranch = ""

	// BuildUser is the user that built the application
	BuildUser = ""

	// GoVersion is the version of Go used to build the application
	GoVersion = runtime.Version()
)

// Short returns "<name> version: <version>", falling back to the module
// version recorded by the toolchain when no version was stamped.
func Short(name string) string {
	if Version == "0.0.0" {
		if info, ok := debug.ReadBuildInfo(); ok {
			return fmt.Sprintf("%s version: %s", name, info.Main.Version)
		}
	}

	return fmt.Sprintf("%s version: %s", name, Version)
}

// Long returns the detailed, single-line build description.
func Long(name string) string {
	var sb strings.Builder

	if Version == "0.0.0" {
		if info, ok := debug.ReadBuildInfo(); ok {
			fmt.Fprintf(&sb, "%s version: %s, ", name, info.Main.Version)
			fmt.Fprintf(&sb, "Git commit: %s, ", info.Main.Sum)
			fmt.Fprintf(&sb, "Go version: %s", info.GoVersion)

			return sb.String()
		}
	}

	fmt.Fprintf(&sb, "%s version: %s, ", name, Version)
	fmt.Fprintf(&sb, "Build date: %s, ", BuildDate)
	fmt.Fprintf(&sb, "Build user: %s, ", BuildUser)
	fmt.Fprintf(&sb, "Git commit: %s, ", GitCommit)
	fmt.Fprintf(&sb, "Git branch: %s, ", GitBranch)
	fmt.Fprintf(&sb, "Go version: %s", GoVersion)

	return sb.String()
}
