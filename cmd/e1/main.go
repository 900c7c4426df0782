// Command e1 is an installed fixture. It takes no arguments and prints one
// diagnostic line per check; the exit status does not reflect check results.
package main

import (
	"log/slog"
	"os"

	"github.com/slashdevops/distprobe/fixture"
)

func main() {
	if err := fixture.Dist.Run(os.Stdout); err != nil {
		slog.Error("failed to write diagnostics", "error", err)
		os.Exit(1)
	}
}
