package handlers

import (
	"net/http"

	"github.com/driversetu/driver-setu/internal/api/dto"
	"github.com/driversetu/driver-setu/internal/domain/profile"
	"github.com/driversetu/driver-setu/internal/navigation"
	"github.com/gin-gonic/gin"
)

// GetSession handles GET /v1/session
func (h *Handlers) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSessionResponse(h.Sessions.State()))
}

// SelectRole handles POST /v1/session/role
func (h *Handlers) SelectRole(c *gin.Context) {
	var req dto.SelectRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	if err := h.Sessions.SetSelectedRole(c.Request.Context(), profile.Role(req.Role)); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSessionResponse(h.Sessions.State()))
}

// Logout handles POST /v1/session/logout
func (h *Handlers) Logout(c *gin.Context) {
	if err := h.Sessions.Logout(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}

	st := h.Sessions.State()
	c.JSON(http.StatusOK, dto.SessionResponse{Session: st, Route: navigation.AfterLogout()})
}

// UpdateProfile handles PATCH /v1/session/profile
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	if err := h.Sessions.UpdateProfile(c.Request.Context(), req.ToUpdate()); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSessionResponse(h.Sessions.State()))
}
