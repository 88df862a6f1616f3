package store

import (
	"context"
	"encoding/json"
	"log"

	"hostelvend-api/internal/model"
)

// Persisted record keys. Each key holds one independently round-trippable
// JSON document.
const (
	KeyItems  = "items"
	KeyUsers  = "users"
	KeyOrders = "orders"
)

// Store is the typed persistence layer over a raw KV backend. Reads
// normalize missing or corrupt records to a caller-visible default and
// persist that default, favouring availability over data-loss detection:
// a parse failure is never surfaced as an error.
type Store struct {
	kv KV
}

// New creates a typed store over the given KV backend.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// load reads key into dest; on a missing key or a record that fails to
// parse it persists fallback and decodes that instead. Only backend I/O
// failures propagate.
func (s *Store) load(ctx context.Context, key string, dest interface{}, fallback interface{}) error {
	raw, err := s.kv.Get(ctx, key)
	if err == nil {
		if jsonErr := json.Unmarshal(raw, dest); jsonErr == nil {
			return nil
		}
		log.Printf("[Store] Corrupt record under %q, resetting to default", key)
	} else if err != ErrKeyNotFound {
		return err
	}

	if err := s.save(ctx, key, fallback); err != nil {
		return err
	}

	encoded, _ := json.Marshal(fallback)
	return json.Unmarshal(encoded, dest)
}

// save persists value under key as pretty-printed JSON.
func (s *Store) save(ctx context.Context, key string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, data)
}

// Items returns the full catalog map, initializing it to the built-in
// defaults on first read or after corruption.
func (s *Store) Items(ctx context.Context) (map[string]model.Item, error) {
	var items map[string]model.Item
	if err := s.load(ctx, KeyItems, &items, model.DefaultItems()); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveItems persists the full catalog map.
func (s *Store) SaveItems(ctx context.Context, items map[string]model.Item) error {
	return s.save(ctx, KeyItems, items)
}

// Users returns the account registry keyed by username.
func (s *Store) Users(ctx context.Context) (map[string]model.Account, error) {
	var users map[string]model.Account
	if err := s.load(ctx, KeyUsers, &users, map[string]model.Account{}); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers persists the account registry.
func (s *Store) SaveUsers(ctx context.Context, users map[string]model.Account) error {
	return s.save(ctx, KeyUsers, users)
}

// Orders returns the order ledger, newest first.
func (s *Store) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := s.load(ctx, KeyOrders, &orders, []model.Order{}); err != nil {
		return nil, err
	}
	return orders, nil
}

// SaveOrders persists the order ledger.
func (s *Store) SaveOrders(ctx context.Context, orders []model.Order) error {
	return s.save(ctx, KeyOrders, orders)
}

// Close closes the underlying KV backend.
func (s *Store) Close() error {
	return s.kv.Close()
}
