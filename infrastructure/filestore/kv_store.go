// Package filestore keeps the key-value store in a single JSON file.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"wedding-invitation/domain/repositories"
	"wedding-invitation/pkg/logger"
)

var errCorrupt = errors.New("store file is not a JSON object of strings")

// KVStore mirrors every key into one JSON object on disk. The whole file is
// rewritten on each change.
type KVStore struct {
	mu     sync.RWMutex
	values map[string]string
	file   string
}

// NewKVStore loads filePath if it exists. A file that does not parse is
// treated as empty and replaced on the next Set.
func NewKVStore(filePath string) (*KVStore, error) {
	s := &KVStore{
		values: make(map[string]string),
		file:   filePath,
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := s.load(); err != nil {
			if !errors.Is(err, errCorrupt) {
				return nil, fmt.Errorf("failed to load store: %w", err)
			}
			logger.StorageWarn("file_corrupt", "Store file is corrupt, starting empty", err, map[string]interface{}{
				"file": filePath,
			})
			s.values = make(map[string]string)
		}
	}
	return s, nil
}

func (s *KVStore) load() error {
	data, err := os.ReadFile(s.file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return fmt.Errorf("%w: %v", errCorrupt, err)
	}
	return nil
}

func (s *KVStore) save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.file), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// replaced by rename, never truncated in place
	tmp, err := os.CreateTemp(filepath.Dir(s.file), filepath.Base(s.file)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.file); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
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
	defer s.mu.Unlock()
	s.values[key] = value
	return s.save()
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.save()
}

// Ping checks that the store's directory is still writable.
func (s *KVStore) Ping(ctx context.Context) error {
	dir := filepath.Dir(s.file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".ping-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func (s *KVStore) Close() error { return nil }

func (s *KVStore) Driver() string { return "file" }
