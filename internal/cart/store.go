// Package cart implements a client-side shopping cart and order log backed by
// a pluggable key-value store. State is serialized as JSON under fixed keys so
// an embedding client can persist it in whatever storage it has available.
package cart

import "sync"

// KeyValueStore is the persistence capability a cart host must provide.
// Implementations return ok=false when the key has never been written.
type KeyValueStore interface {
	Get(key string) (value []byte, ok bool)
	Set(key string, value []byte) error
	Delete(key string) error
}

// MemoryStore is an in-memory KeyValueStore, used as the default backend and
// in tests. Safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false
	}

	cloned := make([]byte, len(value))
	copy(cloned, value)

	return cloned, true
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cloned := make([]byte, len(value))
	copy(cloned, value)
	s.values[key] = cloned

	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)

	return nil
}
