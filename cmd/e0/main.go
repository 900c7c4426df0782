// Command e0 proves that it was installed and that generated sources were
// shipped with it.
package main

import (
	"log/slog"
	"os"

	"github.com/slashdevops/distprobe/fixture"
)

func main() {
	if err := fixture.GeneratedOnly.Run(os.Stdout); err != nil {
		slog.Error("failed to write diagnostics", "error", err)
		os.Exit(1)
	}
}
