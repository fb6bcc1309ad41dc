package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/driversetu/driver-setu/internal/auth"
	"github.com/driversetu/driver-setu/internal/catalog"
	"github.com/driversetu/driver-setu/internal/domain/profile"
	"github.com/driversetu/driver-setu/internal/i18n"
	"github.com/driversetu/driver-setu/internal/service/wallet"
	"github.com/driversetu/driver-setu/internal/session"
	apperrors "github.com/driversetu/driver-setu/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestToAppError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"app error passes through", apperrors.ErrWrongRole, http.StatusForbidden},
		{"no active session", fmt.Errorf("op: %w", session.ErrNoActiveSession), http.StatusConflict},
		{"storage write", &session.StorageWriteError{Op: "login", Keys: []string{session.ProfileKey}, Err: errors.New("io")}, http.StatusServiceUnavailable},
		{"container closed", session.ErrClosed, http.StatusServiceUnavailable},
		{"role mismatch", fmt.Errorf("update profile: %w", profile.ErrFieldRoleMismatch), http.StatusBadRequest},
		{"invalid phone", auth.ErrInvalidPhone, http.StatusBadRequest},
		{"no challenge", auth.ErrNoPendingChallenge, http.StatusConflict},
		{"resend", fmt.Errorf("request otp: %w", auth.ErrResendTooSoon), http.StatusTooManyRequests},
		{"job missing", catalog.ErrJobNotFound, http.StatusNotFound},
		{"action not allowed", catalog.ErrActionNotAllowed, http.StatusConflict},
		{"below minimum", wallet.ErrBelowMinimum, http.StatusBadRequest},
		{"language", i18n.ErrUnsupportedLanguage, http.StatusBadRequest},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := toAppError(tt.err)
			assert.Equal(t, tt.status, appErr.Status)
		})
	}
}

func TestToAppError_ResendKeepsCause(t *testing.T) {
	cause := fmt.Errorf("request otp: %w, retry in 30s", auth.ErrResendTooSoon)

	appErr := toAppError(cause)

	assert.Equal(t, apperrors.ErrResendTooSoon.Code, appErr.Code)
	assert.Equal(t, apperrors.ErrResendTooSoon.Message, appErr.Message)
	assert.ErrorIs(t, appErr, auth.ErrResendTooSoon)
	assert.Nil(t, apperrors.ErrResendTooSoon.Err, "shared value must stay untouched")
}
