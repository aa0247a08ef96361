// Package memory holds in-process implementations of the repositories.
package memory

import (
	"context"
	"sync"

	"wedding-invitation/domain/repositories"
)

// KVStore keeps values in a map. Contents are lost on restart.
type KVStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewKVStore() *KVStore {
	return &KVStore{values: make(map[string]string)}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", repositories.ErrNotFound
	}
	return v, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}

func (s *KVStore) Ping(ctx context.Context) error { return nil }

func (s *KVStore) Close() error { return nil }

func (s *KVStore) Driver() string { return "memory" }
