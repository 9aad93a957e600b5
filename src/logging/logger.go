// Package logging builds the hclog loggers used across detekt-op.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Environment overrides.
const (
	EnvLevel = "DETEKT_OP_LOG_LEVEL"
	EnvJSON  = "DETEKT_OP_JSON_LOG"
)

const linePrefix = "detekt-op │ "

// New creates a logger named name at the given level writing to w
// (stderr when nil). Text output gets a line prefix; JSON output is left
// untouched so it stays machine readable. Call flush before exiting so a
// pending partial line is written.
func New(name, level string, w io.Writer) (logger hclog.Logger, flush func() error) {
	if w == nil {
		w = os.Stderr
	}

	flush = func() error { return nil }
	jsonFormat := os.Getenv(EnvJSON) == "1"
	if !jsonFormat {
		pw := NewPrefixWriter(linePrefix, w)
		flush = pw.Flush
		w = pw
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      ParseLevel(level),
		JSONFormat: jsonFormat,
		Output:     w,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}), flush
}

// ParseLevel maps a level name to an hclog level, defaulting to info.
func ParseLevel(level string) hclog.Level {
	l := hclog.LevelFromString(strings.TrimSpace(level))
	if l == hclog.NoLevel {
		return hclog.Info
	}
	return l
}

// Level resolves the effective level: an explicit flag value wins, then
// the environment, then info.
func Level(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvLevel); env != "" {
		return env
	}
	return "info"
}
