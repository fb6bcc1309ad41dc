package storage

import (
	"context"
	"os"
	"testing"

	"github.com/driversetu/driver-setu/pkg/database"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the contract every backend must satisfy
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, found, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found, "absent key must report not found")

	require.NoError(t, s.Set(ctx, "a", "1"))
	require.NoError(t, s.Set(ctx, "b", "2"))
	require.NoError(t, s.Set(ctx, "a", "3"))

	v, found, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "3", v, "Set must overwrite")

	require.NoError(t, s.RemoveAll(ctx, "a", "b", "never-set"))

	for _, k := range []string{"a", "b"} {
		_, found, err := s.Get(ctx, k)
		require.NoError(t, err)
		assert.False(t, found, "key %s should be removed", k)
	}

	require.NoError(t, s.RemoveAll(ctx))
}

func TestMemoryStore_Contract(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Set(ctx, "k", "v"), context.Canceled)
	assert.Equal(t, 0, s.Len())
}

func TestNamespaced_PrefixesKeys(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	s := WithNamespace(inner, "device-1")

	exerciseStore(t, s)

	require.NoError(t, s.Set(ctx, "k", "v"))
	v, found, err := inner.Get(ctx, "device-1:k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v)

	_, found, err = inner.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestWithNamespace_EmptyReturnsSameStore(t *testing.T) {
	inner := NewMemoryStore()
	assert.Same(t, inner, WithNamespace(inner, "").(*MemoryStore))
}

func TestRedisStore_Contract(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	require.NoError(t, client.Ping(context.Background()).Err())

	exerciseStore(t, WithNamespace(NewRedisStore(client), "storage-test"))
}

func TestPostgresStore_Contract(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := database.Open(ctx, dsn, 2, 1)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.EnsureKVSchema(ctx, db))

	exerciseStore(t, WithNamespace(NewPostgresStore(db), "storage-test"))
}
