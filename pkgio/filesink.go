package pkgio

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSink writes to a temporary file alongside the final path and only renames it
// into place on a clean Close, so a reader can never observe a partially written
// file at FinalPath — publication guarantee.
type FileSink struct {
	tmp *os.File
	finalPath string
	closed bool
	published bool
}

// NewFileSink creates the backing temp file in the same directory as finalPath (so
// the final rename is same-filesystem and therefore atomic on POSIX).
func NewFileSink(finalPath string) (*FileSink, error) {
	dir := filepath.Dir(finalPath)
	tmp, err := os.CreateTemp(dir, ".xlsxstream-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("pkgio: create temp file: %w", err)
	}
	return &FileSink{tmp: tmp, finalPath: finalPath}, nil
}

// Write implements io.Writer.
func (f *FileSink) Write(p []byte) (int, error) {
	return f.tmp.Write(p)
}

// Close flushes and renames the temp file into place. Calling Close more than once
// is a no-op.
func (f *FileSink) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if err := f.tmp.Close(); err != nil {
		os.Remove(f.tmp.Name())
		return fmt.Errorf("pkgio: close temp file: %w", err)
	}
	if err := os.Rename(f.tmp.Name(), f.finalPath); err != nil {
		os.Remove(f.tmp.Name())
		return fmt.Errorf("pkgio: publish %s: %w", f.finalPath, err)
	}
	f.published = true
	return nil
}

// Abort discards the temp file without publishing it, used when a build fails
// before Close.
func (f *FileSink) Abort() error {
	if f.closed {
		return nil
	}
	f.closed = true
	f.tmp.Close()
	return os.Remove(f.tmp.Name())
}

// Published reports whether Close successfully renamed the temp file into place.
func (f *FileSink) Published() bool { return f.published }
