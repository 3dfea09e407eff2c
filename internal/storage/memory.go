package storage

import (
	"errors"
	"sync"
)

// MemoryStore is a process-local KV used by tests, replays and the memory backend.
type MemoryStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	closed bool

	// FailWrites makes every Set fail. Used to exercise degraded persistence.
	FailWrites bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get returns a copy of the stored value.
func (m *MemoryStore) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, false, ErrClosed
	}
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set stores a copy of value.
func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if m.FailWrites {
		return errMemoryWrite
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Close marks the store closed. Data is discarded.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil
	return nil
}

var errMemoryWrite = errors.New("storage: memory store write failed")
