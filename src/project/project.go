// Package project describes the Kotlin project a detekt run is bound to.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// Default layout, relative to the work directory.
var (
	DefaultLibDirectory = filepath.Join("lib", "bld")
	srcMain             = filepath.Join("src", "main")
	srcTest             = filepath.Join("src", "test")
)

// Project is a work directory plus the library directory holding the
// detekt runtime jars.
type Project struct {
	workDir string
	libDir  string
}

// Option customizes a Project.
type Option func(*Project)

// WithLibDirectory overrides the library directory. Relative paths are
// resolved against the work directory.
func WithLibDirectory(dir string) Option {
	return func(p *Project) {
		if dir == "" {
			return
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(p.workDir, dir)
		}
		p.libDir = filepath.Clean(dir)
	}
}

// New returns a project rooted at workDir, which must be an existing directory.
func New(workDir string, opts ...Option) (*Project, error) {
	if workDir == "" {
		workDir = "."
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("project directory: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("project directory %s is not a directory", abs)
	}

	p := &Project{workDir: abs, libDir: filepath.Join(abs, DefaultLibDirectory)}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// Discover returns a project rooted at the top of the git repository that
// contains dir. Outside a repository the project is rooted at dir itself.
func Discover(dir string, opts ...Option) (*Project, error) {
	root, err := RepositoryRoot(dir)
	if err != nil {
		return nil, err
	}
	if root == "" {
		root = dir
	}
	return New(root, opts...)
}

// RepositoryRoot walks up from dir to the enclosing git worktree root.
// It returns "" without error when dir is not inside a repository.
func RepositoryRoot(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", nil
		}
		return "", fmt.Errorf("opening repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return "", nil
		}
		return "", fmt.Errorf("opening worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// WorkDirectory is the absolute project root.
func (p *Project) WorkDirectory() string { return p.workDir }

// LibDirectory is the absolute directory searched for detekt jars.
func (p *Project) LibDirectory() string { return p.libDir }

// SrcMainDirectory is src/main under the work directory.
func (p *Project) SrcMainDirectory() string { return filepath.Join(p.workDir, srcMain) }

// SrcTestDirectory is src/test under the work directory.
func (p *Project) SrcTestDirectory() string { return filepath.Join(p.workDir, srcTest) }

// KotlinSources returns src/main/kotlin and src/test/kotlin, keeping only
// the ones that exist.
func (p *Project) KotlinSources() []string {
	var out []string
	for _, dir := range []string{
		filepath.Join(p.SrcMainDirectory(), "kotlin"),
		filepath.Join(p.SrcTestDirectory(), "kotlin"),
	} {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			out = append(out, dir)
		}
	}
	return out
}
