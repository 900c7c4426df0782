package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/slashdevops/distprobe"
)

type parseOptions struct {
	*rootOptions
	expect []string
}

func newParseCmd(root *rootOptions) *cobra.Command {
	opts := &parseOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Verify diagnostic lines read from a file or stdin",
		Example: `  vendor/bin/e1 | distprobe parse
  distprobe parse --expect e2e.dist.exe-install-to-bin out.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name := cmd.InOrStdin(), "stdin"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in, name = f, args[0]
			}

			return parseDiagnostics(cmd.OutOrStdout(), in, name, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.expect, "expect", nil, "fully qualified key that must be present (repeatable)")

	return cmd
}

func parseDiagnostics(w io.Writer, r io.Reader, name string, opts *parseOptions) error {
	lines, err := distprobe.Parse(r)
	if err != nil {
		return err
	}

	if logger := opts.logger(os.Stderr); logger != nil {
		logger.Debug("parsed diagnostics", "lines", len(lines))
	}

	res := &distprobe.Result{
		Fixture: distprobe.Fixture{Name: name, Kind: distprobe.KindChecks, Expect: opts.expect},
		Lines:   lines,
		Err:     distprobe.Verify(lines, opts.expect),
	}
	printResult(w, res)

	if !res.Passed() {
		return errChecksFailed
	}

	return nil
}
