package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vacaturebord/internal/dtos"
	"vacaturebord/internal/services"
)

// AdminHandler serves the gated routes. The admin gate middleware has already
// refused unauthorized requests before any of these run.
type AdminHandler struct {
	Jobs *services.JobService
}

func NewAdminHandler(jobs *services.JobService) *AdminHandler {
	return &AdminHandler{Jobs: jobs}
}

// Overview is GET /admin: every job with its reactions.
func (h *AdminHandler) Overview(c *gin.Context) {
	jobs, err := h.Jobs.ListWithApplications()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJob is POST /admin: create a job from form fields.
func (h *AdminHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ongeldig formulier: " + err.Error()})
		return
	}

	job, err := h.Jobs.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Vacature toegevoegd!",
		"job":     job,
	})
}

// DeleteJob is POST /admin/delete/:id. Deletion cascades to the job's
// reactions and their CV files, and an unknown id still answers 200.
func (h *AdminHandler) DeleteJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Jobs.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vacature verwijderd"})
}
