package store

import (
	"context"
	"sync"
)

type memoryKeyValueStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryKeyValueStore returns an in-process [KeyValueStore].
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{records: make(map[string][]byte)}
}

func (s *memoryKeyValueStore) GetMany(ctx context.Context, names ...string) (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string][]byte, len(names))
	for _, name := range names {
		if value, ok := s.records[name]; ok {
			found[name] = append([]byte(nil), value...)
		}
	}

	return found, nil
}

func (s *memoryKeyValueStore) SetMany(ctx context.Context, records map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, value := range records {
		s.records[name] = append([]byte(nil), value...)
	}

	return nil
}

func (s *memoryKeyValueStore) Close() error {
	return nil
}
