package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slashdevops/distprobe/internal/version"
)

func newVersionCmd() *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if long {
				fmt.Fprintln(cmd.OutOrStdout(), version.Long("distprobe"))
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.Short("distprobe"))
		},
	}

	cmd.Flags().BoolVar(&long, "long", false, "show detailed version information")

	return cmd
}
