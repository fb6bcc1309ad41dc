package storage

import (
	"context"
	"fmt"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps values in process memory. Nothing survives a restart;
// it backs tests and ephemeral runs.
type MemoryStore struct {
	items *cache.Cache
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: cache.New(cache.NoExpiration, 0)}
}

// Get implements Store
func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	v, ok := m.items.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("storage: unexpected value type %T for key %q", v, key)
	}
	return s, true, nil
}

// Set implements Store
func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.items.Set(key, value, cache.NoExpiration)
	return nil
}

// RemoveAll implements Store
func (m *MemoryStore) RemoveAll(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, k := range keys {
		m.items.Delete(k)
	}
	return nil
}

// Len returns the number of stored keys
func (m *MemoryStore) Len() int {
	return m.items.ItemCount()
}
