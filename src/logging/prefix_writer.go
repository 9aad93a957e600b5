package logging

import (
	"bytes"
	"io"
	"sync"
)

// PrefixWriter wraps an io.Writer and adds a prefix to each complete line.
// Partial lines are held until their newline arrives.
type PrefixWriter struct {
	mu     sync.Mutex
	prefix []byte
	writer io.Writer
	buffer bytes.Buffer
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{prefix: []byte(prefix), writer: w}
}

// Write implements io.Writer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	pw.buffer.Write(p)
	for {
		idx := bytes.IndexByte(pw.buffer.Bytes(), '\n')
		if idx < 0 {
			break
		}
		line := pw.buffer.Next(idx + 1)
		if _, err := pw.writer.Write(append(append([]byte(nil), pw.prefix...), line...)); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// Flush writes any pending partial line.
func (pw *PrefixWriter) Flush() error {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if pw.buffer.Len() == 0 {
		return nil
	}
	rest := pw.buffer.Next(pw.buffer.Len())
	_, err := pw.writer.Write(append(append(append([]byte(nil), pw.prefix...), rest...), '\n'))
	return err
}
