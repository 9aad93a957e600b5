package detekt

import (
	"os"
	"path/filepath"
	"strings"
)

// Path is a structured filesystem location assembled from segments.
// It is one of the three input shapes accepted by file-like options,
// alongside plain strings and *os.File values.
type Path struct {
	elems []string
}

// NewPath builds a Path from one or more segments.
func NewPath(elem ...string) Path {
	return Path{elems: append([]string(nil), elem...)}
}

// Join returns a new Path with elem appended.
func (p Path) Join(elem ...string) Path {
	out := make([]string, 0, len(p.elems)+len(elem))
	out = append(out, p.elems...)
	out = append(out, elem...)
	return Path{elems: out}
}

// String returns the joined, cleaned path.
func (p Path) String() string {
	return filepath.Join(p.elems...)
}

// absPath is the single normalization point for every file-like option.
// An empty input stays empty so that clearing a scalar does not resolve
// to the working directory.
func absPath(p string) string {
	if strings.TrimSpace(p) == "" {
		return ""
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

func fileNames(files []*os.File) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		if f == nil {
			continue
		}
		names = append(names, f.Name())
	}
	return names
}

func pathStrings(paths []Path) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, p.String())
	}
	return out
}

// List is an order-preserving, append-only collection of option values.
// Operation getters return the live list rather than a copy; Clear is the
// only way to reset one.
type List[T any] struct {
	values []T
}

// Append adds values in order. Appending nothing is a no-op.
func (l *List[T]) Append(values ...T) {
	if len(values) == 0 {
		return
	}
	l.values = append(l.values, values...)
}

// Values returns a copy of the current contents.
func (l *List[T]) Values() []T {
	if len(l.values) == 0 {
		return nil
	}
	return append([]T(nil), l.values...)
}

// Len reports the number of values.
func (l *List[T]) Len() int { return len(l.values) }

// Clear drops every value.
func (l *List[T]) Clear() { l.values = nil }

// Each calls fn for every value in order.
func (l *List[T]) Each(fn func(T)) {
	for _, v := range l.values {
		fn(v)
	}
}

func joinList(l *List[string], sep string) string {
	return strings.Join(l.values, sep)
}
