package detekt

import (
	"context"
	"fmt"

	"github.com/sofmeright/detekt-op/src/process"
)

// Execute runs detekt in the project's work directory and waits for it.
//
// It returns ErrNoProject before spawning anything when no project is
// bound, an *ExitError when detekt exits non-zero, and the wrapped runner
// error when the process could not be started.
func (op *Operation) Execute(ctx context.Context) error {
	if op.project == nil {
		if !op.silent {
			op.logger.Error(ErrNoProject.Error())
		}
		return ErrNoProject
	}

	argv, err := op.CommandList()
	if err != nil {
		return err
	}

	res, err := op.runner.Run(ctx, process.Spec{
		Argv:   argv,
		Dir:    op.project.WorkDirectory(),
		Stdout: op.stdout,
		Stderr: op.stderr,
	})
	if err != nil {
		return fmt.Errorf("running detekt: %w", err)
	}
	if res.ExitCode != 0 {
		return &ExitError{Code: res.ExitCode}
	}

	if !op.silent {
		switch {
		case op.settings.CreateBaseline && op.settings.Baseline == "":
			op.logger.Info("detekt baseline generated")
		case op.settings.CreateBaseline:
			op.logger.Info("detekt baseline generated", "path", absPath(op.settings.Baseline))
		default:
			op.logger.Info("detekt operation finished successfully")
		}
	}
	return nil
}
