package monitoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/driversetu/driver-setu/internal/domain/profile"
	"github.com/driversetu/driver-setu/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DisabledWithoutLicense(t *testing.T) {
	nr, err := New(Config{Enabled: true, AppName: "driver-setu"})
	require.NoError(t, err)
	assert.False(t, nr.IsEnabled())

	// all recorders are no-ops when disabled
	nr.RecordCustomEvent("x", nil)
	nr.RecordCustomMetric("x", 1)
	nr.RecordPoolStats("redis", map[string]interface{}{"hits": uint32(3)})
	nr.Shutdown(time.Second)
}

func TestSessionObserver_DisabledApp(t *testing.T) {
	nr, err := New(Config{})
	require.NoError(t, err)

	var o session.Observer = NewSessionObserver(nr)
	p := &profile.Profile{ID: "driver_1", Name: "Rajesh", Role: profile.RoleDriver}

	assert.NotPanics(t, func() {
		o.LoggedIn(p)
		o.ProfileUpdated(p)
		o.LoggedOut(profile.RoleDriver)
		o.StorageFailure("login", errors.New("boom"))
	})
}

type fixedStats map[string]interface{}

func (f fixedStats) PoolStats() map[string]interface{} { return f }

func TestReportPoolStats_ReturnsWhenDisabled(t *testing.T) {
	nr, err := New(Config{})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		nr.ReportPoolStats(context.Background(), "redis", fixedStats{}, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reporter did not return for a disabled app")
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		in   interface{}
		want float64
		ok   bool
	}{
		{int(2), 2, true},
		{int32(3), 3, true},
		{int64(4), 4, true},
		{uint32(5), 5, true},
		{uint64(6), 6, true},
		{1.5, 1.5, true},
		{"7", 0, false},
	}

	for _, tt := range tests {
		got, ok := toFloat(tt.in)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.want, got)
	}
}
