package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newArgsCmd(a *app) *cobra.Command {
	var flags detektFlags
	cmd := &cobra.Command{
		Use:   "args [project-dir]",
		Short: "Print the detekt command line without running it",
		Long:  "Print the java command line detekt-op would run, one token per line.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, _, err := a.newOperation(&flags, projectDirs(args)[0], io.Discard, io.Discard)
			if err != nil {
				return err
			}
			argv, err := op.CommandList()
			if err != nil {
				return err
			}
			for _, arg := range argv {
				fmt.Fprintln(a.stdout, arg)
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
