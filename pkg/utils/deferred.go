// Package utils provides small shared helpers.
package utils

import (
	"bytes"
	"io"
	"sync"
)

// DeferredWriter buffers writes in memory until flushed. It is used to hold
// log output while a TUI owns the terminal, then replay it on exit.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write appends p to the internal buffer.
func (w *DeferredWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

// Flush replays everything buffered so far to out and resets the buffer.
func (w *DeferredWriter) Flush(out io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() == 0 {
		return nil
	}

	_, err := io.Copy(out, &w.buf)
	w.buf.Reset()
	return err
}
