package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sofmeright/detekt-op/src/detekt"
)

func newBaselineCmd(a *app) *cobra.Command {
	var flags detektFlags
	cmd := &cobra.Command{
		Use:   "baseline [project-dir]",
		Short: "Create or refresh the project's detekt baseline",
		Long: `Run detekt with --create-baseline. Without --baseline the file is
` + detekt.BaselineFile + ` in the project directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProjects(cmd.Context(), &flags, projectDirs(args), runOptions{jobs: 1, prepare: prepareBaseline})
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func prepareBaseline(op *detekt.Operation, workDir string) {
	op.CreateBaseline(true)
	if op.Settings().Baseline == "" {
		op.Baseline(filepath.Join(workDir, detekt.BaselineFile))
	}
}
