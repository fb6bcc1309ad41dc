package routes

import (
	"github.com/driversetu/driver-setu/internal/api/handlers"
	"github.com/driversetu/driver-setu/internal/domain/profile"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, h *handlers.Handlers, nrApp *newrelic.Application) {
	// Add New Relic middleware if enabled
	if nrApp != nil {
		r.Use(nrgin.Middleware(nrApp))
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":        "healthy",
			"authenticated": h.Sessions.IsAuthenticated(),
			"connections":   h.Hub.GetActiveConnections(),
		})
	})

	driverOnly := h.RequireRole(profile.RoleDriver)
	ownerOnly := h.RequireRole(profile.RoleOwner)
	adminOnly := h.RequireRole(profile.RoleAdmin)
	signedIn := h.RequireRole(profile.Roles...)

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// WebSocket connection
		v1.GET("/ws", h.HandleWebSocket)

		// Session endpoints
		sessions := v1.Group("/session")
		{
			sessions.GET("", h.GetSession)
			sessions.POST("/role", h.SelectRole)
			sessions.POST("/logout", h.Logout)
			sessions.PATCH("/profile", h.UpdateProfile)
		}

		// Sign-in endpoints
		auth := v1.Group("/auth")
		{
			auth.POST("/otp", h.RequestOTP)
			auth.POST("/otp/verify", h.VerifyOTP)
			auth.POST("/admin", h.AdminLogin)
		}

		// Localization endpoints
		i18n := v1.Group("/i18n")
		{
			i18n.GET("/languages", h.Languages)
			i18n.PUT("/language", h.SetLanguage)
			i18n.GET("/messages", h.Messages)
		}

		// Job board endpoints
		jobs := v1.Group("/jobs", signedIn)
		{
			jobs.GET("", h.ListJobs)
			jobs.GET("/:id", h.GetJob)
			jobs.POST("", ownerOnly, h.PostJob)
		}
		v1.GET("/owner/jobs", ownerOnly, h.OwnerJobs)

		// Driver discovery endpoints
		drivers := v1.Group("/drivers", ownerOnly)
		{
			drivers.GET("/search", h.SearchDrivers)
			drivers.GET("/recommended", h.RecommendedDrivers)
		}

		// Wallet endpoints
		wallet := v1.Group("/wallet", driverOnly)
		{
			wallet.GET("", h.GetWallet)
			wallet.POST("/withdraw", h.Withdraw)
		}

		// Admin endpoints
		admin := v1.Group("/admin", adminOnly)
		{
			admin.GET("/users", h.ListUsers)
			admin.POST("/users/:id/:action", h.ModerateUser)
			admin.GET("/transactions", h.PlatformTransactions)
		}
	}
}
