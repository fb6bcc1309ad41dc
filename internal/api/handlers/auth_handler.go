package handlers

import (
	"net/http"

	"github.com/driversetu/driver-setu/internal/api/dto"
	"github.com/driversetu/driver-setu/internal/domain/profile"
	"github.com/gin-gonic/gin"
)

// RequestOTP handles POST /v1/auth/otp
func (h *Handlers) RequestOTP(c *gin.Context) {
	var req dto.RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	challenge, err := h.Auth.RequestOTP(c.Request.Context(), req.Phone, profile.Role(req.Role))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, challenge)
}

// VerifyOTP handles POST /v1/auth/otp/verify
func (h *Handlers) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	res, err := h.Auth.VerifyOTP(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// AdminLogin handles POST /v1/auth/admin
func (h *Handlers) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	res, err := h.Auth.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
