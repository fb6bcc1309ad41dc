package handlers

import (
	"net/http"

	"github.com/driversetu/driver-setu/internal/api/dto"
	"github.com/driversetu/driver-setu/internal/catalog"
	"github.com/gin-gonic/gin"
)

// ListJobs handles GET /v1/jobs
func (h *Handlers) ListJobs(c *gin.Context) {
	status, err := catalog.ParseJobStatus(c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	jobs := h.Catalog.Jobs(status)
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

// GetJob handles GET /v1/jobs/:id
func (h *Handlers) GetJob(c *gin.Context) {
	job, err := h.Catalog.Job(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// PostJob handles POST /v1/jobs
func (h *Handlers) PostJob(c *gin.Context) {
	var req dto.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	owner := currentProfile(c)
	job, err := h.Catalog.PostJob(owner.Name, catalog.NewJob{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary,
		Duration:    req.Duration,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// OwnerJobs handles GET /v1/owner/jobs
func (h *Handlers) OwnerJobs(c *gin.Context) {
	jobs := h.Catalog.OwnerJobs()
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}
