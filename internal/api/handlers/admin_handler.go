package handlers

import (
	"net/http"

	"github.com/driversetu/driver-setu/internal/catalog"
	"github.com/gin-gonic/gin"
)

// ListUsers handles GET /v1/admin/users?filter=
func (h *Handlers) ListUsers(c *gin.Context) {
	filter, err := catalog.ParseUserFilter(c.Query("filter"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	users := h.Catalog.Users(filter)
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// ModerateUser handles POST /v1/admin/users/:id/:action
func (h *Handlers) ModerateUser(c *gin.Context) {
	action, err := catalog.ParseAction(c.Param("action"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	user, err := h.Catalog.Moderate(c.Param("id"), action)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PlatformTransactions handles GET /v1/admin/transactions
func (h *Handlers) PlatformTransactions(c *gin.Context) {
	txs := h.Catalog.PlatformTransactions()

	var revenue float64
	for _, tx := range txs {
		if tx.Amount > 0 {
			revenue += tx.Amount
		}
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs, "revenue": revenue})
}
