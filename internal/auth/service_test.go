package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/driversetu/driver-setu/internal/domain/profile"
	"github.com/driversetu/driver-setu/internal/navigation"
	"github.com/driversetu/driver-setu/internal/session"
	"github.com/driversetu/driver-setu/pkg/logger"
	"github.com/driversetu/driver-setu/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSessions struct {
	logins []*profile.Profile
	err    error
}

func (r *recordingSessions) Login(_ context.Context, p *profile.Profile) error {
	if r.err != nil {
		return r.err
	}
	r.logins = append(r.logins, p)
	return nil
}

func testConfig() Config {
	return Config{OTPTTL: time.Minute, ResendAfter: 30 * time.Second}
}

func newTestService(t *testing.T, sessions SessionStarter) *Service {
	t.Helper()
	return NewService(sessions, logger.Wrap(zaptest.NewLogger(t)), testConfig())
}

func TestRequestOTP_Validation(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		role  profile.Role
		want  error
	}{
		{"admin uses email", "9876543210", profile.RoleAdmin, ErrRoleNotOTP},
		{"no role", "9876543210", profile.RoleNone, ErrRoleNotOTP},
		{"too short", "98765", profile.RoleDriver, ErrInvalidPhone},
		{"too long", "98765432100", profile.RoleDriver, ErrInvalidPhone},
		{"letters", "98765abcde", profile.RoleOwner, ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t, &recordingSessions{})
			_, err := s.RequestOTP(context.Background(), tt.phone, tt.role)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRequestOTP_ResendDelay(t *testing.T) {
	s := newTestService(t, &recordingSessions{})
	now := time.Date(2025, 2, 12, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	first, err := s.RequestOTP(context.Background(), " 9876543210 ", profile.RoleDriver)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", first.Phone)
	assert.Equal(t, now.Add(30*time.Second), first.ResendAt)

	_, err = s.RequestOTP(context.Background(), "9876543210", profile.RoleDriver)
	assert.ErrorIs(t, err, ErrResendTooSoon)

	now = now.Add(31 * time.Second)
	second, err := s.RequestOTP(context.Background(), "9876543210", profile.RoleDriver)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRequestOTP_ConcurrentRequestsIssueOneChallenge(t *testing.T) {
	s := newTestService(t, &recordingSessions{})

	const callers = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		issued  int
		limited int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.RequestOTP(context.Background(), "9876543210", profile.RoleDriver)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				issued++
			} else if errors.Is(err, ErrResendTooSoon) {
				limited++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, issued)
	assert.Equal(t, callers-1, limited)
}

func TestVerifyOTP_Driver(t *testing.T) {
	sessions := &recordingSessions{}
	s := newTestService(t, sessions)
	ctx := context.Background()

	_, err := s.RequestOTP(ctx, "9876543210", profile.RoleDriver)
	require.NoError(t, err)

	res, err := s.VerifyOTP(ctx, "9876543210", "123456")
	require.NoError(t, err)

	assert.Equal(t, navigation.DriverHome, res.Route)
	require.Len(t, sessions.logins, 1)
	p := sessions.logins[0]
	assert.True(t, strings.HasPrefix(p.ID, "driver_"))
	assert.Equal(t, "Rajesh Kumar", p.Name)
	assert.Equal(t, "9876543210", p.Phone)
	require.NotNil(t, p.Driver)
	assert.Equal(t, profile.KYCPending, p.Driver.KYCStatus)
	assert.Equal(t, 85, p.Driver.TrustScore)
	assert.False(t, p.Verified())

	_, pending := s.Pending("9876543210")
	assert.False(t, pending, "challenge is consumed")
}

func TestVerifyOTP_Owner(t *testing.T) {
	sessions := &recordingSessions{}
	s := newTestService(t, sessions)
	ctx := context.Background()

	_, err := s.RequestOTP(ctx, "9876543212", profile.RoleOwner)
	require.NoError(t, err)

	res, err := s.VerifyOTP(ctx, "9876543212", "000000")
	require.NoError(t, err)
	assert.Equal(t, navigation.OwnerHome, res.Route)
	assert.Equal(t, "Suresh Patil", res.Profile.Name)
	assert.True(t, res.Profile.Verified())
	assert.NoError(t, res.Profile.Validate())
}

func TestVerifyOTP_Errors(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, &recordingSessions{})

	_, err := s.VerifyOTP(ctx, "9876543210", "123456")
	assert.ErrorIs(t, err, ErrNoPendingChallenge)

	_, err = s.VerifyOTP(ctx, "9876543210", "12345")
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = s.VerifyOTP(ctx, "123", "123456")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestVerifyOTP_LoginFailureKeepsChallenge(t *testing.T) {
	boom := errors.New("disk full")
	s := newTestService(t, &recordingSessions{err: boom})
	ctx := context.Background()

	_, err := s.RequestOTP(ctx, "9876543210", profile.RoleDriver)
	require.NoError(t, err)

	_, err = s.VerifyOTP(ctx, "9876543210", "123456")
	assert.ErrorIs(t, err, boom)

	_, pending := s.Pending("9876543210")
	assert.True(t, pending)
}

func TestVerifyOTP_CancelledDuringDelay(t *testing.T) {
	sessions := &recordingSessions{}
	cfg := testConfig()
	cfg.OTPDelay = time.Hour
	s := NewService(sessions, nil, cfg)

	_, err := s.RequestOTP(context.Background(), "9876543210", profile.RoleDriver)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = s.VerifyOTP(ctx, "9876543210", "123456")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, sessions.logins)
}

func TestAdminLogin(t *testing.T) {
	sessions := &recordingSessions{}
	s := newTestService(t, sessions)

	_, err := s.AdminLogin(context.Background(), "admin@driversetu.in", "  ")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	res, err := s.AdminLogin(context.Background(), " admin@driversetu.in ", "secret")
	require.NoError(t, err)
	assert.Equal(t, navigation.AdminHome, res.Route)
	assert.Equal(t, "admin@driversetu.in", res.Profile.Email)
	assert.Equal(t, profile.StatusActive, res.Profile.Status)
	assert.True(t, strings.HasPrefix(res.Profile.ID, "admin_"))
}

func TestVerifyOTP_StartsRealSession(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	c := session.New(store)
	go c.Run()
	t.Cleanup(c.Close)
	require.NoError(t, c.Hydrate(ctx))

	s := newTestService(t, c)
	_, err := s.RequestOTP(ctx, "9876543210", profile.RoleOwner)
	require.NoError(t, err)
	_, err = s.VerifyOTP(ctx, "9876543210", "654321")
	require.NoError(t, err)

	st := c.State()
	assert.True(t, st.IsAuthenticated())
	assert.Equal(t, profile.RoleOwner, st.SelectedRole)

	role, found, err := store.Get(ctx, session.RoleKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "owner", role)
}

func TestRequestOTP_LogsTimings(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := testConfig()
	s := NewService(&recordingSessions{}, logger.Wrap(zap.New(core)), cfg)
	ctx := context.Background()

	_, err := s.RequestOTP(ctx, "9876543210", profile.RoleOwner)
	require.NoError(t, err)
	_, err = s.VerifyOTP(ctx, "9876543210", "123456")
	require.NoError(t, err)

	requested := logs.FilterMessage("OTP requested").All()
	require.Len(t, requested, 1)
	assert.Equal(t, cfg.ResendAfter, requested[0].ContextMap()["resend_after"])

	verifying := logs.FilterMessage("Verifying OTP").All()
	require.Len(t, verifying, 1)
	assert.Contains(t, verifying[0].ContextMap(), "challenge")
	assert.Equal(t, time.Duration(0), verifying[0].ContextMap()["delay"])
}
