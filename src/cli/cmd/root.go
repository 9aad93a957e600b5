package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/sofmeright/detekt-op/src/config"
	"github.com/sofmeright/detekt-op/src/logging"
	"github.com/sofmeright/detekt-op/src/process"
)

// app holds the state shared by every command of one invocation.
type app struct {
	cfgFile  string
	verbose  bool
	logLevel string

	cfg      *config.Config
	logger   hclog.Logger
	flushLog func() error

	stdout io.Writer
	stderr io.Writer

	// newRunner builds the process runner handed to each operation.
	newRunner func(hclog.Logger) process.Runner
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:   stdout,
		stderr:   stderr,
		logger:   hclog.NewNullLogger(),
		flushLog: func() error { return nil },
		newRunner: func(l hclog.Logger) process.Runner {
			return process.NewExecRunner(l)
		},
	}
}

// newRootCmd assembles the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "detekt-op",
		Short: "Run detekt static analysis on Kotlin projects",
		Long:  "detekt-op builds and runs the detekt command line for Kotlin projects using the detekt jars in the project's library directory.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logging.Level(a.logLevel)
			if a.verbose && a.logLevel == "" {
				level = "debug"
			}
			a.logger, a.flushLog = logging.New("detekt-op", level, a.stderr)

			// Skip config loading for commands that don't need it.
			if cmd.Name() == "version" {
				return nil
			}
			return a.loadConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: .detekt-op.yml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (env "+logging.EnvLevel+")")

	root.AddCommand(
		newRunCmd(a),
		newBaselineCmd(a),
		newArgsCmd(a),
		newJarsCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) loadConfig() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	warnings, err := config.Validate(cfg)
	for _, w := range warnings {
		a.logger.Warn("config", "warning", w)
	}
	if err != nil {
		return fmt.Errorf("invalid config %s: %w", cfg.Path, err)
	}
	if cfg.Path != "" {
		a.logger.Debug("loaded config", "path", cfg.Path)
	}
	a.cfg = cfg
	return nil
}

// Execute runs the root command. Interrupts cancel the running detekt
// processes.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(os.Stdout, os.Stderr)
	err := newRootCmd(a).ExecuteContext(ctx)
	_ = a.flushLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
