package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/sofmeright/detekt-op/src/detekt"
	"github.com/stretchr/testify/require"
)

var _ detekt.Project = (*Project)(nil)

func TestNewDefaults(t *testing.T) {
	dir := t.TempDir()

	p, err := New(dir)
	require.NoError(t, err)
	require.Equal(t, dir, p.WorkDirectory())
	require.Equal(t, filepath.Join(dir, "lib", "bld"), p.LibDirectory())
	require.Equal(t, filepath.Join(dir, "src", "main"), p.SrcMainDirectory())
	require.Equal(t, filepath.Join(dir, "src", "test"), p.SrcTestDirectory())
}

func TestNewLibDirectory(t *testing.T) {
	dir := t.TempDir()

	p, err := New(dir, WithLibDirectory("tools/detekt"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "tools", "detekt"), p.LibDirectory())

	other := t.TempDir()
	p, err = New(dir, WithLibDirectory(other))
	require.NoError(t, err)
	require.Equal(t, other, p.LibDirectory())
}

func TestNewRejectsMissingOrFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	file := filepath.Join(t.TempDir(), "build.gradle.kts")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = New(file)
	require.Error(t, err)
}

func TestDiscoverFindsRepositoryRoot(t *testing.T) {
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	nested := filepath.Join(root, "app", "src", "main")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	p, err := Discover(nested)
	require.NoError(t, err)
	require.Equal(t, root, p.WorkDirectory())
}

func TestDiscoverOutsideRepository(t *testing.T) {
	dir := t.TempDir()

	got, err := RepositoryRoot(dir)
	require.NoError(t, err)
	require.Empty(t, got)

	p, err := Discover(dir)
	require.NoError(t, err)
	require.Equal(t, dir, p.WorkDirectory())
}

func TestKotlinSources(t *testing.T) {
	dir := t.TempDir()
	p, err := New(dir)
	require.NoError(t, err)
	require.Empty(t, p.KotlinSources())

	main := filepath.Join(dir, "src", "main", "kotlin")
	require.NoError(t, os.MkdirAll(main, 0o755))
	require.Equal(t, []string{main}, p.KotlinSources())
}
