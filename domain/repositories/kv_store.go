package repositories

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KVStore.Get for a key that was never written.
var ErrNotFound = errors.New("key not found")

// KVStore is a string key-value store. Values are whole documents that are
// read and rewritten as a unit.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
	// Driver names the backend for health reports.
	Driver() string
}
