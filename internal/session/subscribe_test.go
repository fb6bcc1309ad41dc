package session

import (
	"context"
	"testing"
	"time"

	"github.com/driversetu/driver-setu/internal/domain/profile"
	"github.com/driversetu/driver-setu/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan State) State {
	t.Helper()
	select {
	case st, ok := <-ch:
		require.True(t, ok, "subscription closed unexpectedly")
		return st
	case <-time.After(time.Second):
		t.Fatal("no state received")
		return State{}
	}
}

func TestSubscribe_ReceivesCurrentStateFirst(t *testing.T) {
	c := newTestContainer(t, storage.NewMemoryStore())

	ch, cancel := c.Subscribe()
	defer cancel()

	assert.True(t, receive(t, ch).Hydrating)
}

func TestSubscribe_NotifiedWithoutPolling(t *testing.T) {
	ctx := context.Background()
	c := newTestContainer(t, storage.NewMemoryStore())
	require.NoError(t, c.Hydrate(ctx))

	ch, cancel := c.Subscribe()
	defer cancel()
	receive(t, ch)

	require.NoError(t, c.Login(ctx, testDriver()))

	// a slow reader sees only the newest snapshot
	st := receive(t, ch)
	assert.True(t, st.IsAuthenticated())
	assert.Equal(t, profile.RoleDriver, st.SelectedRole)

	require.NoError(t, c.Logout(ctx))
	st = receive(t, ch)
	assert.False(t, st.IsAuthenticated())
}

func TestSubscribe_SnapshotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	c := newTestContainer(t, storage.NewMemoryStore())

	ch, cancel := c.Subscribe()
	defer cancel()
	receive(t, ch)

	require.NoError(t, c.Login(ctx, testDriver()))
	st := receive(t, ch)
	st.Profile.Name = "Mutated"

	assert.Equal(t, "Test", c.Profile().Name)
}

func TestSubscribe_CancelClosesChannel(t *testing.T) {
	c := newTestContainer(t, storage.NewMemoryStore())

	ch, cancel := c.Subscribe()
	receive(t, ch)
	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
}

func TestSubscribe_CloseEndsSubscriptions(t *testing.T) {
	c := newTestContainer(t, storage.NewMemoryStore())

	ch, cancel := c.Subscribe()
	defer cancel()
	receive(t, ch)

	c.Close()
	_, ok := <-ch
	assert.False(t, ok)

	late, _ := c.Subscribe()
	_, ok = <-late
	assert.False(t, ok)
}
