// Package store provides the persisted slot that holds the serialized expense list.
//
// A slot is a single named value: the whole list is read at startup and the
// whole list is written back after every mutation. Backends differ only in
// where that value lives.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// DefaultSlot is the slot name used when none is configured.
const DefaultSlot = "expenses"

var (
	// ErrNotFound is returned by Load when the slot has never been written.
	ErrNotFound = errors.New("slot not found")
	// ErrCorrupt marks a payload that exists but cannot be decoded.
	ErrCorrupt = errors.New("slot payload corrupt")
	// ErrPersist wraps every failed write.
	ErrPersist = errors.New("persisting slot")
)

// Slot reads and writes one named payload.
type Slot interface {
	// Load returns the stored payload, or ErrNotFound if nothing was saved yet.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the stored payload.
	Save(ctx context.Context, payload []byte) error

	// Location describes where the payload lives, for display.
	Location() string

	// Close releases any resources held by the slot.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// SlotPath returns the file that backs the named slot under dataDir. The
// memory backend has no file and yields "".
func SlotPath(backend, dataDir, name string) (string, error) {
	if name == "" {
		name = DefaultSlot
	}
	switch backend {
	case BackendSQLite, "":
		return filepath.Join(dataDir, "spent.db"), nil
	case BackendFile:
		return filepath.Join(dataDir, name+".json"), nil
	case BackendMemory:
		return "", nil
	default:
		return "", fmt.Errorf("unknown storage backend %q", backend)
	}
}

// Open returns the slot for the named backend rooted at dataDir.
func Open(backend, dataDir, name string) (Slot, error) {
	if name == "" {
		name = DefaultSlot
	}
	path, err := SlotPath(backend, dataDir, name)
	if err != nil {
		return nil, err
	}
	switch backend {
	case BackendSQLite, "":
		return OpenSQLite(path, name)
	case BackendFile:
		return NewFileSlot(path), nil
	default:
		return NewMemorySlot(name), nil
	}
}
