package store

import "context"

// KVError is a sentinel error type for key-value access.
type KVError string

func (e KVError) Error() string { return string(e) }

// ErrKeyNotFound indicates the key has never been written.
const ErrKeyNotFound KVError = "key not found"

// KV defines raw key-value persistence. This abstraction allows swapping
// between SQLite (default), MySQL (shared deployments) and memory (tests)
// without changing the typed store or any business logic.
type KV interface {
	// Get retrieves the raw value for key. Returns ErrKeyNotFound if the
	// key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Close closes the backing connection.
	Close() error
}
