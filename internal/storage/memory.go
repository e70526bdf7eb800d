package storage

import (
	"sync"

	"github.com/Tiliavir/studylog/internal/model"
)

// MemoryStore holds the serialized entry list in memory. Nothing survives
// the process; it goes through the same encoding as the durable backends so
// round-trip behaviour matches them.
type MemoryStore struct {
	mu    sync.Mutex
	value []byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Read() ([]model.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := decode(m.value)
	if err != nil {
		return []model.Entry{}, nil
	}
	return entries, nil
}

func (m *MemoryStore) Write(entries []model.Entry) error {
	data, err := encode(entries)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.value = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	m.value = nil
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Close() error { return nil }
