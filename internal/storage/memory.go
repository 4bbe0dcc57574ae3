package storage

import (
	"context"
	"sync"
)

// MemoryStorage keeps key-value pairs in process memory. Used by tests
// and as the failover fallback.
type MemoryStorage struct {
	data sync.Map
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Get(ctx context.Context, key string) (string, error) {
	val, ok := s.data.Load(key)
	if !ok {
		return "", ErrKeyNotFound
	}
	return val.(string), nil
}

func (s *MemoryStorage) Set(ctx context.Context, key, value string) error {
	s.data.Store(key, value)
	return nil
}

func (s *MemoryStorage) Delete(ctx context.Context, key string) error {
	s.data.Delete(key)
	return nil
}
