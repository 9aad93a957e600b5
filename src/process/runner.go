// Package process runs external tools as child processes.
// It is the seam between argument building and the operating system, so
// callers can swap in a fake Runner in tests.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Spec describes a single process invocation.
type Spec struct {
	Argv   []string  // program followed by its arguments (required)
	Dir    string    // working directory (empty = current)
	Env    []string  // extra KEY=VALUE entries appended to the parent environment
	Stdout io.Writer // if set, stdout is streamed here as well as captured
	Stderr io.Writer // if set, stderr is streamed here as well as captured
}

// Result holds the outcome of a process that was started successfully.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Runner executes a Spec.
//
// A non-zero exit status is not an error: it is reported through
// Result.ExitCode. The error return is reserved for failures to start or
// communicate with the process.
type Runner interface {
	Run(ctx context.Context, spec Spec) (*Result, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct {
	Logger hclog.Logger
}

// NewExecRunner returns a runner that logs through logger (nil = discard).
func NewExecRunner(logger hclog.Logger) *ExecRunner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ExecRunner{Logger: logger}
}

// Run starts the process and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, spec Spec) (*Result, error) {
	if len(spec.Argv) == 0 || spec.Argv[0] == "" {
		return nil, errors.New("process: empty command")
	}
	logger := r.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	cmd := exec.CommandContext(ctx, spec.Argv[0], spec.Argv[1:]...) // #nosec G204 -- argv is built by the caller
	cmd.Dir = spec.Dir
	if len(spec.Env) > 0 {
		cmd.Env = append(cmd.Environ(), spec.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = tee(&stdout, spec.Stdout)
	cmd.Stderr = tee(&stderr, spec.Stderr)

	logger.Debug("starting process", "program", spec.Argv[0], "args", len(spec.Argv)-1, "dir", spec.Dir)

	err := cmd.Run()
	res := &Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			res.ExitCode = exitErr.ExitCode()
			logger.Debug("process exited", "program", spec.Argv[0], "status", res.ExitCode)
			return res, nil
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s: %w", spec.Argv[0], ctx.Err())
		}
		return nil, fmt.Errorf("%s: %w", spec.Argv[0], err)
	}

	logger.Debug("process exited", "program", spec.Argv[0], "status", 0)
	return res, nil
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}

// CommandLine renders argv for display, quoting tokens that contain spaces.
func CommandLine(argv []string) string {
	parts := make([]string, 0, len(argv))
	for _, a := range argv {
		if a == "" || strings.ContainsAny(a, " \t\"") {
			parts = append(parts, fmt.Sprintf("%q", a))
			continue
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
