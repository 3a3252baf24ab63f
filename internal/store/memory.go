package store

import (
	"context"
	"sync"
)

// MemorySlot keeps the payload in process memory. Two slots share nothing,
// so tests that need a reload pass the same *MemorySlot to both stores.
type MemorySlot struct {
	mu      sync.Mutex
	name    string
	payload []byte
	saved   bool

	// FailSave makes every Save fail, for exercising write-failure paths.
	FailSave error
	// Saves counts successful writes.
	Saves int
}

// NewMemorySlot returns an empty in-memory slot.
func NewMemorySlot(name string) *MemorySlot {
	return &MemorySlot{name: name}
}

// Load implements Slot.
func (m *MemorySlot) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		return nil, ErrNotFound
	}
	return append([]byte(nil), m.payload...), nil
}

// Save implements Slot.
func (m *MemorySlot) Save(_ context.Context, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSave != nil {
		return m.FailSave
	}
	m.payload = append([]byte(nil), payload...)
	m.saved = true
	m.Saves++
	return nil
}

// Set stores a raw payload, bypassing FailSave and the save counter.
func (m *MemorySlot) Set(payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payload = append([]byte(nil), payload...)
	m.saved = true
}

// Location implements Slot.
func (m *MemorySlot) Location() string {
	return "memory:" + m.name
}

// Close implements Slot.
func (m *MemorySlot) Close() error {
	return nil
}
