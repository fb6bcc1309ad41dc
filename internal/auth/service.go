// Package auth simulates the sign-in flows. No code is sent and any
// well-formed code is accepted; a successful sign-in starts the session.
package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/driversetu/driver-setu/internal/domain/profile"
	"github.com/driversetu/driver-setu/internal/navigation"
	"github.com/driversetu/driver-setu/pkg/logger"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionStarter is the part of the session container auth needs
type SessionStarter interface {
	Login(ctx context.Context, p *profile.Profile) error
}

// Config holds the simulated timings
type Config struct {
	OTPDelay    time.Duration
	AdminDelay  time.Duration
	OTPTTL      time.Duration
	ResendAfter time.Duration
}

// DefaultConfig mirrors the timings users see in the app
func DefaultConfig() Config {
	return Config{
		OTPDelay:    1500 * time.Millisecond,
		AdminDelay:  time.Second,
		OTPTTL:      5 * time.Minute,
		ResendAfter: 30 * time.Second,
	}
}

// Challenge is a pending phone verification
type Challenge struct {
	ID        string       `json:"challenge_id"`
	Phone     string       `json:"phone"`
	Role      profile.Role `json:"role"`
	ExpiresAt time.Time    `json:"expires_at"`
	ResendAt  time.Time    `json:"resend_at"`
}

// Result is returned by a successful sign-in
type Result struct {
	Profile *profile.Profile `json:"profile"`
	Route   navigation.Route `json:"route"`
}

// Service runs the sign-in flows
type Service struct {
	sessions   SessionStarter
	challenges *cache.Cache
	// serializes the resend check with the challenge write
	issueMu    sync.Mutex
	logger     *logger.Logger
	config     Config
	now        func() time.Time
}

// NewService creates a new auth service
func NewService(sessions SessionStarter, log *logger.Logger, config Config) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		sessions:   sessions,
		challenges: cache.New(config.OTPTTL, 2*config.OTPTTL),
		logger:     log.Named("auth"),
		config:     config,
		now:        time.Now,
	}
}

// RequestOTP opens a verification challenge for a driver or owner phone
// number. A new code cannot be requested before the resend delay elapses.
func (s *Service) RequestOTP(ctx context.Context, phone string, role profile.Role) (*Challenge, error) {
	if !role.UsesOTP() {
		return nil, fmt.Errorf("request otp: %w: %q", ErrRoleNotOTP, role)
	}
	phone, err := normalizePhone(phone)
	if err != nil {
		return nil, err
	}

	s.issueMu.Lock()
	defer s.issueMu.Unlock()

	now := s.now()
	if v, ok := s.challenges.Get(phone); ok {
		if existing := v.(*Challenge); now.Before(existing.ResendAt) {
			return nil, fmt.Errorf("request otp: %w, retry in %s", ErrResendTooSoon, existing.ResendAt.Sub(now).Round(time.Second))
		}
	}

	ch := &Challenge{
		ID:        uuid.New().String(),
		Phone:     phone,
		Role:      role,
		ExpiresAt: now.Add(s.config.OTPTTL),
		ResendAt:  now.Add(s.config.ResendAfter),
	}
	s.challenges.Set(phone, ch, s.config.OTPTTL)

	s.logger.Info("OTP requested",
		logger.String("challenge_id", ch.ID),
		logger.String("role", string(role)),
		logger.Duration("resend_after", s.config.ResendAfter),
	)
	return ch, nil
}

// VerifyOTP accepts any 6 digit code for a pending challenge, signs the user
// in with the demo profile for the challenge's role and returns the landing
// route.
func (s *Service) VerifyOTP(ctx context.Context, phone, code string) (*Result, error) {
	phone, err := normalizePhone(phone)
	if err != nil {
		return nil, err
	}
	if !isDigits(code, 6) {
		return nil, ErrInvalidCode
	}
	v, ok := s.challenges.Get(phone)
	if !ok {
		return nil, ErrNoPendingChallenge
	}
	ch := v.(*Challenge)

	s.logger.Debug("Verifying OTP", logger.Any("challenge", ch), logger.Duration("delay", s.config.OTPDelay))
	if err := sleep(ctx, s.config.OTPDelay); err != nil {
		return nil, err
	}

	p := demoProfile(ch.Role, phone)
	if err := s.sessions.Login(ctx, p); err != nil {
		return nil, fmt.Errorf("verify otp: %w", err)
	}
	s.challenges.Delete(phone)

	s.logger.Info("OTP verified", logger.String("user_id", p.ID), logger.String("role", string(p.Role)))
	return &Result{Profile: p, Route: navigation.Home(p.Role)}, nil
}

// AdminLogin signs an administrator in with any non-blank credentials
func (s *Service) AdminLogin(ctx context.Context, email, password string) (*Result, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, ErrMissingCredentials
	}

	s.logger.Debug("Checking admin credentials", logger.Duration("delay", s.config.AdminDelay))
	if err := sleep(ctx, s.config.AdminDelay); err != nil {
		return nil, err
	}

	p := &profile.Profile{
		ID:     newID(profile.RoleAdmin),
		Name:   "Admin",
		Email:  email,
		Role:   profile.RoleAdmin,
		Status: profile.StatusActive,
		Admin:  &profile.AdminDetails{},
	}
	if err := s.sessions.Login(ctx, p); err != nil {
		return nil, fmt.Errorf("admin login: %w", err)
	}

	s.logger.Info("Admin signed in", logger.String("user_id", p.ID))
	return &Result{Profile: p, Route: navigation.Home(p.Role)}, nil
}

// Pending reports the open challenge for phone, if any
func (s *Service) Pending(phone string) (*Challenge, bool) {
	v, ok := s.challenges.Get(strings.TrimSpace(phone))
	if !ok {
		return nil, false
	}
	return v.(*Challenge), true
}

func normalizePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if !isDigits(phone, 10) {
		return "", ErrInvalidPhone
	}
	return phone, nil
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func newID(role profile.Role) string {
	return string(role) + "_" + uuid.New().String()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
