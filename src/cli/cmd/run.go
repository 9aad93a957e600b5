package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sofmeright/detekt-op/src/detekt"
	"github.com/sofmeright/detekt-op/src/output"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		flags    detektFlags
		jobs     int
		failFast bool
	)
	cmd := &cobra.Command{
		Use:   "run [project-dir...]",
		Short: "Run detekt on one or more projects",
		Long: `Run detekt on each project directory (default: the current directory).

Options come from the config file and are overridden by flags. Several
projects run concurrently up to --jobs, and their output is printed in
argument order. With --fail-fast the first failure cancels the projects
still running and skips the rest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProjects(cmd.Context(), &flags, projectDirs(args), runOptions{jobs: jobs, failFast: failFast})
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "projects to analyze concurrently")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop the remaining projects after the first failure")
	return cmd
}

// projectRun is the outcome of one project, kept for ordered printing.
type projectRun struct {
	dir    string
	buf    bytes.Buffer
	result output.ProjectResult
	err    error
}

// prepareFunc adjusts an operation before it runs; baseline uses it.
type prepareFunc func(op *detekt.Operation, workDir string)

type runOptions struct {
	jobs     int
	failFast bool
	prepare  prepareFunc
}

// runProjects executes detekt for every dir and renders a summary. A single
// project streams its output; several are buffered per project and framed
// in collapsed CI log sections.
func (a *app) runProjects(ctx context.Context, flags *detektFlags, dirs []string, opts runOptions) error {
	if opts.jobs < 1 {
		opts.jobs = 1
	}
	color := output.UseColor(a.cfg.Output.Color)
	w := a.stdout
	start := time.Now()

	output.ContextBlock(w, output.ContextKV())

	runs := make([]*projectRun, len(dirs))
	for i, dir := range dirs {
		runs[i] = &projectRun{dir: dir}
	}

	if len(runs) == 1 {
		a.runProject(ctx, flags, runs[0], w, color, false, opts.prepare)
	} else {
		g := &errgroup.Group{}
		gctx := ctx
		if opts.failFast {
			g, gctx = errgroup.WithContext(ctx)
		}
		g.SetLimit(opts.jobs)
		for _, r := range runs {
			r := r
			g.Go(func() error {
				a.runProject(gctx, flags, r, &r.buf, color, true, opts.prepare)
				return r.err
			})
		}
		if err := g.Wait(); err != nil && opts.failFast {
			a.logger.Warn("stopping after first failure", "error", err)
		}
		for _, r := range runs {
			if _, err := io.Copy(w, &r.buf); err != nil {
				return err
			}
		}
	}

	results := make([]output.ProjectResult, len(runs))
	var errs []error
	for i, r := range runs {
		results[i] = r.result
		if r.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.dir, r.err))
		}
	}
	output.Summary(w, results, time.Since(start), color)

	return errors.Join(errs...)
}

// runProject runs one project and records its result on r. A project whose
// context is already done is skipped.
func (a *app) runProject(ctx context.Context, flags *detektFlags, r *projectRun, w io.Writer, color, collapsed bool, prepare prepareFunc) {
	start := time.Now()
	r.result = output.ProjectResult{Dir: r.dir}

	if ctx.Err() != nil {
		r.result.Status = output.StatusSkipped
		r.result.Detail = "skipped"
		return
	}

	op, proj, err := a.newOperation(flags, r.dir, w, w)
	if err != nil {
		r.err = err
		r.result.Status = output.StatusFailed
		r.result.Detail = err.Error()
		failureSection(w, err, color)
		return
	}
	r.result.Dir = proj.WorkDirectory()
	if prepare != nil {
		prepare(op, proj.WorkDirectory())
	}

	id := "detekt_" + sectionID(proj.WorkDirectory())
	title := "detekt " + filepath.Base(proj.WorkDirectory())
	if collapsed {
		output.SectionStartCollapsed(w, id, title)
	} else {
		output.SectionStart(w, id, title)
	}

	sec := output.NewSection(w, "Detekt", 0, color)
	sec.Field("project", proj.WorkDirectory())
	sec.Field("lib", proj.LibDirectory())
	if v, verr := detekt.DetektVersion(proj.LibDirectory()); verr == nil {
		sec.Field("detekt", v)
	}
	s := op.Settings()
	sec.Field("baseline", s.Baseline)
	sec.Field("inputs", strings.Join(op.InputList().Values(), ", "))
	var reports []string
	op.ReportList().Each(func(rep detekt.Report) { reports = append(reports, rep.Arg()) })
	sec.Field("reports", strings.Join(reports, ", "))
	sec.Close()
	fmt.Fprintln(w)

	err = op.Execute(ctx)
	output.SectionEnd(w, id)

	r.result.Elapsed = time.Since(start)
	switch {
	case err == nil:
		r.result.Status = output.StatusSuccess
		if s.CreateBaseline {
			r.result.Detail = "baseline → " + s.Baseline
		} else {
			r.result.Detail = "passed"
		}
	default:
		r.err = err
		r.result.Status = output.StatusFailed
		var exitErr *detekt.ExitError
		if errors.As(err, &exitErr) {
			r.result.Detail = "exit status " + strconv.Itoa(exitErr.Code)
		} else {
			r.result.Detail = err.Error()
		}
		failureSection(w, err, color)
	}
}

// failureSection renders err in its own section, one row per line.
func failureSection(w io.Writer, err error, color bool) {
	sec := output.NewSection(w, "Failure", 0, color)
	sec.Lines(err.Error())
	sec.Close()
}

var nonIDChars = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// sectionID turns a path into a CI log section identifier.
func sectionID(dir string) string {
	return strings.Trim(nonIDChars.ReplaceAllString(filepath.Base(dir), "_"), "_")
}
