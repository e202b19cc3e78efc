package sink

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reoring/maxslog/document"
)

// File writes each snapshot to a path as a pretty-printed XML document.
type File struct {
	path   string
	closed bool
}

// NewFile returns a File sink for path. The file is not touched until the
// first Write.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("sink: empty file path")
	}
	return &File{path: path}, nil
}

// Path returns the destination path.
func (f *File) Path() string { return f.path }

func (f *File) Write(doc *document.KernelNotifications) error {
	if f.closed {
		return ErrClosed
	}
	data, err := document.Marshal(doc)
	if err != nil {
		return err
	}
	return WriteAtomic(f.path, data)
}

func (f *File) Close() error {
	f.closed = true
	return nil
}

// WriteAtomic replaces path with data. The bytes go to a temp file in the
// same directory first, so readers only ever see the old or the new content.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("sink: create temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("sink: write temp file for %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sink: sync temp file for %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("sink: chmod temp file for %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("sink: close temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("sink: rename temp file to %s: %w", path, err)
	}
	return nil
}
