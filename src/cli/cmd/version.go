package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/detekt-op/src/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.stdout, version.String())
			if a.verbose {
				fmt.Fprintln(a.stdout, version.Runtime())
			}
			return nil
		},
	}
}
