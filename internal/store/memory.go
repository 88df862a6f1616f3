package store

import (
	"context"
	"sync"
)

// MemoryKV is an in-memory implementation of KV.
// Use this for development/testing; nothing survives a restart.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKV creates a new in-memory key-value store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string][]byte)}
}

// Get retrieves the raw value for key.
func (s *MemoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

// Set overwrites the value for key.
func (s *MemoryKV) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	s.values[key] = valueCopy
	return nil
}

// Close is a no-op for the memory store.
func (s *MemoryKV) Close() error {
	return nil
}

// Ensure MemoryKV implements KV
var _ KV = (*MemoryKV)(nil)
