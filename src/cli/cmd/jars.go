package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sofmeright/detekt-op/src/detekt"
)

func newJarsCmd(a *app) *cobra.Command {
	var flags detektFlags
	cmd := &cobra.Command{
		Use:   "jars [project-dir]",
		Short: "List the detekt jars found in the library directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := a.openProject(&flags, projectDirs(args)[0])
			if err != nil {
				return err
			}
			lib := proj.LibDirectory()

			jars, err := detekt.Jars(lib)
			if err != nil {
				return err
			}
			if len(jars) == 0 {
				fmt.Fprintf(a.stdout, "no jars in %s match the detekt runtime prefixes:\n", lib)
				for _, p := range detekt.JarPrefixes() {
					fmt.Fprintf(a.stdout, "  %s*.jar\n", p)
				}
				return fmt.Errorf("no detekt jars in %s", lib)
			}
			v, err := detekt.DetektVersion(lib)
			if err != nil {
				return err
			}

			if v == "" {
				v = "unknown"
			}
			fmt.Fprintf(a.stdout, "detekt %s (%d jars in %s)\n", v, len(jars), lib)
			for _, j := range jars {
				fmt.Fprintf(a.stdout, "  %s\n", filepath.Base(j))
			}
			return nil
		},
	}
	flags.registerProject(cmd.Flags())
	return cmd
}
