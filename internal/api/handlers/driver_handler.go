package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const recommendedDrivers = 3

// SearchDrivers handles GET /v1/drivers/search?q=&available_only=
func (h *Handlers) SearchDrivers(c *gin.Context) {
	availableOnly, _ := strconv.ParseBool(c.Query("available_only"))

	drivers := h.Catalog.SearchDrivers(c.Query("q"), availableOnly)
	c.JSON(http.StatusOK, gin.H{"drivers": drivers, "count": len(drivers)})
}

// RecommendedDrivers handles GET /v1/drivers/recommended
func (h *Handlers) RecommendedDrivers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"drivers": h.Catalog.RecommendedDrivers(recommendedDrivers)})
}
