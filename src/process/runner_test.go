package process

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestHelperProcess is not a real test: it is the child process spawned by
// the tests below through os.Args[0].
func TestHelperProcess(t *testing.T) {
	if os.Getenv("DETEKT_OP_HELPER_PROCESS") != "1" {
		return
	}
	switch os.Getenv("HELPER_MODE") {
	case "echo":
		wd, _ := os.Getwd()
		fmt.Fprintf(os.Stdout, "out:%s\n", filepath.Base(wd))
		fmt.Fprintln(os.Stderr, "err:line")
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "3 issues found")
		os.Exit(2)
	case "sleep":
		time.Sleep(10 * time.Second)
		os.Exit(0)
	}
	os.Exit(0)
}

func helperSpec(mode string) Spec {
	return Spec{
		Argv: []string{os.Args[0], "-test.run=TestHelperProcess"},
		Env:  []string{"DETEKT_OP_HELPER_PROCESS=1", "HELPER_MODE=" + mode},
	}
}

func TestExecRunnerCapturesAndStreams(t *testing.T) {
	dir := t.TempDir()
	var streamed bytes.Buffer

	spec := helperSpec("echo")
	spec.Dir = dir
	spec.Stdout = &streamed

	res, err := NewExecRunner(nil).Run(context.Background(), spec)
	require.NoError(t, err)
	require.Equal(t, 0, res.ExitCode)
	require.Contains(t, string(res.Stdout), "out:"+filepath.Base(dir))
	require.Contains(t, string(res.Stderr), "err:line")
	require.Equal(t, string(res.Stdout), streamed.String())
}

func TestExecRunnerNonZeroExitIsNotAnError(t *testing.T) {
	res, err := NewExecRunner(nil).Run(context.Background(), helperSpec("fail"))
	require.NoError(t, err)
	require.Equal(t, 2, res.ExitCode)
	require.Contains(t, string(res.Stderr), "3 issues found")
}

func TestExecRunnerMissingProgram(t *testing.T) {
	_, err := NewExecRunner(nil).Run(context.Background(), Spec{
		Argv: []string{filepath.Join(t.TempDir(), "no-such-java")},
	})
	require.Error(t, err)
}

func TestExecRunnerEmptyCommand(t *testing.T) {
	_, err := NewExecRunner(nil).Run(context.Background(), Spec{})
	require.EqualError(t, err, "process: empty command")
}

func TestExecRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := NewExecRunner(nil).Run(ctx, helperSpec("sleep"))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCommandLine(t *testing.T) {
	got := CommandLine([]string{"java", "-cp", "a.jar:b.jar", "--base-path", "/my dir", ""})
	require.Equal(t, `java -cp a.jar:b.jar --base-path "/my dir" ""`, got)
}
