package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSlot keeps the payload in a single JSON file.
type FileSlot struct {
	path string
}

// NewFileSlot returns a slot backed by the file at path. The file is created
// on first Save.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// Load implements Slot.
func (f *FileSlot) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	return data, nil
}

// Save writes to a temp file in the same directory and renames it over the
// target, so a reader never sees a half-written list.
func (f *FileSlot) Save(_ context.Context, payload []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrPersist, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: writing %s: %v", ErrPersist, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: syncing %s: %v", ErrPersist, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// Location implements Slot.
func (f *FileSlot) Location() string {
	return f.path
}

// Path returns the backing file path.
func (f *FileSlot) Path() string {
	return f.path
}

// Close implements Slot.
func (f *FileSlot) Close() error {
	return nil
}
