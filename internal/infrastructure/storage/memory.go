package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-process KeyValue used when redis is disabled and in
// tests. Contents do not survive a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	lists  map[string][]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
		lists:  make(map[string][]string),
	}
}

// Get returns the value for key.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.values[key]
	return val, ok, nil
}

// Set stores value under key.
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Delete removes key.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// GetList returns a copy of the list stored under key.
func (s *MemoryStore) GetList(ctx context.Context, key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.lists[key]
	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}

// SetList replaces the list stored under key.
func (s *MemoryStore) SetList(ctx context.Context, key string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]string, len(values))
	copy(list, values)
	s.lists[key] = list
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
