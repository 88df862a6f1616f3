package cache

import (
	"context"
	"time"
)

// Cache defines the interface for short-lived key-value entries
// (verification challenges, session tokens). This abstraction allows
// swapping between memory (single instance) and Redis (shared)
// without changing business logic.
type Cache interface {
	// Get retrieves a value by key. Returns ErrCacheMiss if not found
	// or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL, replacing any prior value.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Close releases any background resources.
	Close() error
}

// CacheError is a sentinel error type for cache access.
type CacheError string

func (e CacheError) Error() string { return string(e) }

// ErrCacheMiss indicates the key was not found in cache.
const ErrCacheMiss CacheError = "cache miss"
