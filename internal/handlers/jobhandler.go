package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"vacaturebord/internal/models"
	"vacaturebord/internal/services"
	"vacaturebord/internal/validation"
)

// JobHandler serves the public job-board surface.
type JobHandler struct {
	Jobs         *services.JobService
	Applications *services.ApplicationService
}

func NewJobHandler(jobs *services.JobService, applications *services.ApplicationService) *JobHandler {
	return &JobHandler{
		Jobs:         jobs,
		Applications: applications,
	}
}

// ListJobs is GET /. Repeated category query parameters narrow the listing;
// a job matching any of them is included.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.List(c.QueryArray("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob is GET /job/:id. Applicant details stay behind the admin gate; the
// public detail only carries how many reactions exist.
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	job, err := h.Jobs.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	apps, err := h.Applications.ListByJob(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job":               job,
		"application_count": len(apps),
	})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ongeldig id"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps domain errors onto the HTTP surface. Anything unexpected
// is logged with detail and answered generically.
func respondError(c *gin.Context, err error) {
	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validatie mislukt",
			"fields": verr.Fields,
		})
	case errors.Is(err, models.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrJobNotFound.Error()})
	case errors.Is(err, models.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": models.ErrUnauthorized.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "interne fout"})
	}
}
