// Package storage provides the durable string-keyed store the session
// container and the localizer persist into.
package storage

import (
	"context"
	"errors"
)

// ErrClosed is returned by stores used after Close
var ErrClosed = errors.New("storage: store is closed")

// Store is an asynchronous string-keyed key-value store
type Store interface {
	// Get returns the value for key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// RemoveAll deletes every key in one batch. Missing keys are ignored.
	RemoveAll(ctx context.Context, keys ...string) error
}

// Namespaced prefixes every key before delegating to the wrapped store, so
// several local installs can share one Redis or Postgres in development.
type Namespaced struct {
	Store
	prefix string
}

// WithNamespace wraps store with a key prefix. An empty namespace returns
// store unchanged.
func WithNamespace(store Store, namespace string) Store {
	if namespace == "" {
		return store
	}
	return &Namespaced{Store: store, prefix: namespace + ":"}
}

// Get implements Store
func (n *Namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.Store.Get(ctx, n.prefix+key)
}

// Set implements Store
func (n *Namespaced) Set(ctx context.Context, key, value string) error {
	return n.Store.Set(ctx, n.prefix+key, value)
}

// RemoveAll implements Store
func (n *Namespaced) RemoveAll(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = n.prefix + k
	}
	return n.Store.RemoveAll(ctx, prefixed...)
}
