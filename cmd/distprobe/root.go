package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// errChecksFailed is returned when at least one fixture did not pass. The
// details have already been printed.
var errChecksFailed = errors.New("one or more checks failed")

type rootOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "distprobe",
		Short: "Run installed fixtures and verify their diagnostics",
		Long: `distprobe executes fixture programs installed by a packaging pipeline.

Each fixture prints lines of the form "<namespace>.<check> = <0|1>".
A fixture passes when it prints exactly the keys its manifest entry expects
and every value is 1. UUID fixtures must print one canonical UUID.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newParseCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger returns a debug-level logger writing to w when verbose output was
// requested, and nil otherwise.
func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	if !o.verbose {
		return nil
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
