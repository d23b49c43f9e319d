package services

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"vacaturebord/internal/dtos"
	"vacaturebord/internal/models"
	"vacaturebord/internal/storage"
	"vacaturebord/internal/validation"
)

type ApplicationService struct {
	DB      *gorm.DB
	Uploads *storage.Store
}

func NewApplicationService(db *gorm.DB, uploads *storage.Store) *ApplicationService {
	return &ApplicationService{
		DB:      db,
		Uploads: uploads,
	}
}

// Create stores a reaction on a job. Name and email must validate, an
// attached CV must be a PDF of at most 5 MB, and the job must still exist at
// insertion time. The file is written to disk first and removed again when
// the insert transaction fails, so file and record exist together or not at
// all.
func (s *ApplicationService) Create(jobID uint, req dtos.ApplicationRequest, cv *storage.IncomingFile) (*models.Application, error) {
	fieldsErr := validation.Application(req)
	var cvErr error
	if cv != nil {
		cvErr = validation.CVFile(cv.Filename, cv.Size)
	}
	if err := validation.Merge(fieldsErr, cvErr); err != nil {
		return nil, err
	}

	var storedName string
	if cv != nil {
		name, err := s.Uploads.Save(cv.Filename, cv.Content)
		if err != nil {
			return nil, err
		}
		storedName = name
	}

	app := &models.Application{
		JobID:      jobID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		CVFilename: storedName,
	}

	// The existence check and the insert share one transaction, so a delete
	// of the job cannot commit in between and leave an orphan reaction.
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.First(&job, jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrJobNotFound
			}
			return err
		}
		return tx.Create(app).Error
	})
	if err != nil {
		if storedName != "" {
			if rmErr := s.Uploads.Remove(storedName); rmErr != nil {
				log.Warn().Err(rmErr).Str("file", storedName).Msg("Failed to clean up CV after failed submission")
			}
		}
		return nil, err
	}
	return app, nil
}

// ListByJob returns the reactions on a job, newest first.
func (s *ApplicationService) ListByJob(jobID uint) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.
		Where("job_id = ?", jobID).
		Order("created_at DESC, id DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}
