package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/driversetu/driver-setu/internal/auth"
	"github.com/driversetu/driver-setu/internal/catalog"
	"github.com/driversetu/driver-setu/internal/domain/profile"
	"github.com/driversetu/driver-setu/internal/i18n"
	"github.com/driversetu/driver-setu/internal/service/wallet"
	"github.com/driversetu/driver-setu/internal/session"
	apperrors "github.com/driversetu/driver-setu/pkg/errors"
	"github.com/driversetu/driver-setu/pkg/logger"
	"github.com/driversetu/driver-setu/pkg/monitoring"
	"github.com/driversetu/driver-setu/pkg/websocket"
	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
)

// Handlers holds all handler dependencies
type Handlers struct {
	Sessions  *session.Container
	Localizer *i18n.Localizer
	Auth      *auth.Service
	Catalog   *catalog.Catalog
	Wallet    *wallet.Service
	Hub       *websocket.Hub
	Monitor   *monitoring.NewRelicApp
	Logger    *logger.Logger
	Upgrader  gorilla.Upgrader
}

// NewHandlers creates a new Handlers instance. Monitor may be a disabled
// app; it is never nil.
func NewHandlers(
	sessions *session.Container,
	localizer *i18n.Localizer,
	authService *auth.Service,
	cat *catalog.Catalog,
	walletService *wallet.Service,
	hub *websocket.Hub,
	monitor *monitoring.NewRelicApp,
	log *logger.Logger,
) *Handlers {
	return &Handlers{
		Sessions:  sessions,
		Localizer: localizer,
		Auth:      authService,
		Catalog:   cat,
		Wallet:    walletService,
		Hub:       hub,
		Monitor:   monitor,
		Logger:    log,
		Upgrader: gorilla.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // the service only listens on the device
			},
		},
	}
}

// respondError writes err as a JSON error body with the mapped status
func (h *Handlers) respondError(c *gin.Context, err error) {
	appErr := toAppError(err)
	if appErr.Status >= http.StatusInternalServerError {
		h.Logger.Error("Request failed",
			logger.String("path", c.FullPath()),
			logger.Int("status", appErr.Status),
			logger.Err(err),
		)
	}
	c.AbortWithStatusJSON(appErr.Status, gin.H{"error": appErr.Message, "code": appErr.Code})
}

// bindError reports a malformed request body
func (h *Handlers) bindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request payload",
		"code":    "BAD_REQUEST",
		"details": err.Error(),
	})
}

var badRequest = []error{
	profile.ErrInvalidRole,
	profile.ErrInvalidProfileID,
	profile.ErrInvalidProfileName,
	profile.ErrInvalidStatus,
	profile.ErrInvalidKYCStatus,
	profile.ErrSectionMismatch,
	profile.ErrFieldRoleMismatch,
	session.ErrNilProfile,
	auth.ErrInvalidPhone,
	auth.ErrInvalidCode,
	auth.ErrRoleNotOTP,
	auth.ErrMissingCredentials,
	catalog.ErrMissingJobFields,
	catalog.ErrInvalidJobStatus,
	catalog.ErrInvalidUserFilter,
	catalog.ErrInvalidAction,
	wallet.ErrBelowMinimum,
	wallet.ErrInsufficientFunds,
	i18n.ErrUnsupportedLanguage,
}

// toAppError maps domain errors onto HTTP-aware application errors
func toAppError(err error) *apperrors.AppError {
	var storageErr *session.StorageWriteError

	switch {
	case apperrors.IsAppError(err):
		return apperrors.GetAppError(err)
	case errors.Is(err, session.ErrNoActiveSession):
		return apperrors.ErrNoActiveSession.WithErr(err)
	case errors.As(err, &storageErr):
		return apperrors.ErrStorageUnavailable.WithErr(err)
	case errors.Is(err, session.ErrClosed):
		return apperrors.ServiceUnavailable("Session is shutting down", err)
	case errors.Is(err, auth.ErrNoPendingChallenge):
		return apperrors.ErrNoPendingChallenge.WithErr(err)
	case errors.Is(err, auth.ErrResendTooSoon):
		return apperrors.ErrResendTooSoon.WithErr(err)
	case errors.Is(err, catalog.ErrJobNotFound):
		return apperrors.ErrJobNotFound.WithErr(err)
	case errors.Is(err, catalog.ErrUserNotFound):
		return apperrors.ErrUserNotFound.WithErr(err)
	case errors.Is(err, catalog.ErrActionNotAllowed):
		return apperrors.ErrActionNotAllowed.WithErr(err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return apperrors.ServiceUnavailable("Request timed out", err)
	}

	for _, target := range badRequest {
		if errors.Is(err, target) {
			return apperrors.BadRequest(err.Error(), err)
		}
	}
	return apperrors.Internal("An unexpected error occurred", err)
}
