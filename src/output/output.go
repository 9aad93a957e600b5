// Package output renders detekt-op's terminal output: framed sections,
// status icons and the per-project run summary.
package output

import (
	"io"
	"os"
	"strings"
	"time"
)

// Colors for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// Status is the outcome of one project run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// ProjectResult is one row of the run summary.
type ProjectResult struct {
	Dir     string
	Status  Status
	Detail  string
	Elapsed time.Duration
}

// Summary renders a "Summary" section with one row per project followed by
// the total. The overall status is failed if any project failed.
func Summary(w io.Writer, results []ProjectResult, elapsed time.Duration, color bool) {
	sec := NewSection(w, "Summary", 0, color)

	overall := StatusSuccess
	for _, r := range results {
		if r.Status == StatusFailed {
			overall = StatusFailed
		}
		detail := r.Detail
		if r.Elapsed > 0 {
			detail = strings.TrimSpace(detail + " " + Dimmed("("+formatElapsed(r.Elapsed)+")", color))
		}
		SummaryRow(w, shortDir(r.Dir), string(r.Status), detail, color)
	}

	sec.Separator()
	SummaryTotal(w, elapsed, string(overall), color)
	sec.Close()
}

// shortDir keeps the last two path elements so rows stay aligned.
func shortDir(dir string) string {
	parts := strings.FieldsFunc(dir, func(r rune) bool { return r == '/' || r == '\\' })
	if len(parts) <= 2 {
		return dir
	}
	return "…/" + strings.Join(parts[len(parts)-2:], "/")
}

// Colorize wraps text in the given ANSI color when color is enabled.
func Colorize(text, ansi string, color bool) string {
	if !color {
		return text
	}
	return ansi + text + colorReset
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// UseColor reports whether colored output should be used for the given
// mode: "always", "never", or "auto" (the default). Auto respects NO_COLOR,
// TERM=dumb and terminal detection, and enables color in CI.
func UseColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal() || IsCI()
}
