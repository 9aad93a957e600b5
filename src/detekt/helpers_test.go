package detekt

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sofmeright/detekt-op/src/process"
	"github.com/stretchr/testify/require"
)

type fakeProject struct {
	work string
	lib  string
}

func (p fakeProject) WorkDirectory() string { return p.work }
func (p fakeProject) LibDirectory() string  { return p.lib }

// newFakeProject lays out a work directory with an empty lib/bld.
func newFakeProject(t *testing.T) fakeProject {
	t.Helper()
	work := t.TempDir()
	lib := filepath.Join(work, "lib", "bld")
	require.NoError(t, os.MkdirAll(lib, 0o755))
	return fakeProject{work: work, lib: lib}
}

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	return path
}

// openFile creates name in the current directory and returns it opened.
func openFile(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Create(name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

type fakeRunner struct {
	calls  []process.Spec
	result *process.Result
	err    error
}

func (r *fakeRunner) Run(_ context.Context, spec process.Spec) (*process.Result, error) {
	r.calls = append(r.calls, spec)
	if r.err != nil {
		return nil, r.err
	}
	if r.result == nil {
		return &process.Result{}, nil
	}
	return r.result, nil
}

func newTestOperation(opts ...Option) *Operation {
	base := []Option{WithJava("java"), WithRunner(&fakeRunner{})}
	return New(append(base, opts...)...)
}

func mustReport(t *testing.T, kind ReportKind, path string) Report {
	t.Helper()
	r, err := NewReport(kind, path)
	require.NoError(t, err)
	return r
}
