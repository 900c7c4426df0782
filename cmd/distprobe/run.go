package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/slashdevops/distprobe"
)

type runOptions struct {
	*rootOptions
	manifest string
	timeout  time.Duration
	executor distprobe.CommandExecutor
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "run [fixture...]",
		Short: "Run fixtures listed in a manifest",
		Example: `  distprobe run --manifest testdata/e2e.yaml
  distprobe run --manifest vendor/e2e.yaml e1 mkuuid`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixtures(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", "distprobe.yaml", "manifest listing the fixtures")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "timeout for a single fixture run")

	return cmd
}

func runFixtures(cmd *cobra.Command, opts *runOptions, names []string) error {
	m, err := distprobe.LoadManifest(opts.manifest)
	if err != nil {
		return err
	}

	fixtures, err := m.Select(names...)
	if err != nil {
		return err
	}

	h := distprobe.NewHarness().WithTimeout(opts.timeout)
	if opts.executor != nil {
		h.WithExecutor(opts.executor)
	}
	h.WithLogger(opts.logger(cmd.ErrOrStderr()))

	results, err := h.CheckAll(cmd.Context(), fixtures)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		printResult(cmd.OutOrStdout(), res)
		if !res.Passed() {
			failed++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d/%d fixtures passed\n", len(results)-failed, len(results))

	if failed > 0 {
		return errChecksFailed
	}

	return nil
}

func printResult(w io.Writer, res *distprobe.Result) {
	status := "PASS"
	if !res.Passed() {
		status = "FAIL"
	}
	fmt.Fprintf(w, "%s %s\n", status, res.Fixture.Name)

	for _, l := range res.Lines {
		fmt.Fprintf(w, "  %s\n", l)
	}
	if res.UUID != "" {
		fmt.Fprintf(w, "  uuid = %s\n", res.UUID)
	}

	if res.Err != nil {
		for _, err := range unjoin(res.Err) {
			fmt.Fprintf(w, "  error: %v\n", err)
		}
	}
}

// unjoin splits an error built with errors.Join back into its parts.
func unjoin(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}

	return []error{err}
}
