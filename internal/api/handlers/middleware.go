package handlers

import (
	"github.com/driversetu/driver-setu/internal/domain/profile"
	apperrors "github.com/driversetu/driver-setu/pkg/errors"
	"github.com/gin-gonic/gin"
)

const profileContextKey = "profile"

// RequireRole lets the request through only when someone is signed in with
// one of roles. The current profile is stored on the context.
func (h *Handlers) RequireRole(roles ...profile.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := h.Sessions.Profile()
		if p == nil {
			h.respondError(c, apperrors.ErrNotAuthenticated)
			return
		}

		allowed := false
		for _, r := range roles {
			if p.Role == r {
				allowed = true
				break
			}
		}
		if !allowed {
			h.respondError(c, apperrors.ErrWrongRole)
			return
		}

		c.Set(profileContextKey, p)
		c.Next()
	}
}

// currentProfile returns the profile stored by RequireRole
func currentProfile(c *gin.Context) *profile.Profile {
	if v, ok := c.Get(profileContextKey); ok {
		if p, ok := v.(*profile.Profile); ok {
			return p
		}
	}
	return nil
}
