package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "No active session", ErrNoActiveSession.Error())

	cause := errors.New("redis: connection refused")
	wrapped := ErrStorageUnavailable.WithErr(cause)
	assert.Equal(t, "Session could not be saved: redis: connection refused", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
	assert.Nil(t, ErrStorageUnavailable.Err, "sentinel must not be modified")
}

func TestGetAppError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"app error", ErrWrongRole, http.StatusForbidden, "FORBIDDEN"},
		{"wrapped app error", fmt.Errorf("gate: %w", ErrNotAuthenticated), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"too many requests", ErrResendTooSoon, http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := GetAppError(tt.err)
			assert.Equal(t, tt.status, appErr.Status)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(BadRequest("bad", nil)))
	assert.False(t, IsAppError(errors.New("plain")))
}
