package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"vacaturebord/internal/dtos"
	"vacaturebord/internal/services"
	"vacaturebord/internal/storage"
)

// ApplicationHandler serves the public reaction form and stored CV downloads.
type ApplicationHandler struct {
	Applications *services.ApplicationService
	Uploads      *storage.Store
}

func NewApplicationHandler(applications *services.ApplicationService, uploads *storage.Store) *ApplicationHandler {
	return &ApplicationHandler{
		Applications: applications,
		Uploads:      uploads,
	}
}

// Apply is POST /apply/:id. Multipart form: required name and email, optional
// phone, message and a cv file part.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dtos.ApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ongeldig formulier: " + err.Error()})
		return
	}

	var cv *storage.IncomingFile
	header, err := c.FormFile("cv")
	switch {
	case err == nil:
		f, openErr := header.Open()
		if openErr != nil {
			respondError(c, openErr)
			return
		}
		defer f.Close()
		cv = &storage.IncomingFile{
			Filename: header.Filename,
			Size:     header.Size,
			Content:  f,
		}
	case errors.Is(err, http.ErrMissingFile):
		// cv is optional
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "ongeldig formulier: " + err.Error()})
		return
	}

	app, err := h.Applications.Create(id, req, cv)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Je reactie is verzonden!",
		"application": app,
	})
}

// ServeCV is GET /uploads/:filename. Stored CVs download as attachments;
// names that are unknown or would escape the upload dir both come back 404.
func (h *ApplicationHandler) ServeCV(c *gin.Context) {
	name := c.Param("filename")

	path, err := h.Uploads.Path(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "bestand niet gevonden"})
		return
	}
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "bestand niet gevonden"})
		return
	}
	c.FileAttachment(path, name)
}
