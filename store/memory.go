package store

import (
	"context"
	"sync"
)

// MemoryStore holds encoded collections in-process. Used by tests.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string][]byte
	saves map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte), saves: make(map[string]int)}
}

func (m *MemoryStore) Load(_ context.Context, collection string, dest any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[collection]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

func (m *MemoryStore) Save(_ context.Context, collection string, records any) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[collection] = raw
	m.saves[collection]++
	return nil
}

// Saves reports how many times a collection was flushed.
func (m *MemoryStore) Saves(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves[collection]
}
