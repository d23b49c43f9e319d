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

type JobService struct {
	DB      *gorm.DB
	Uploads *storage.Store
}

func NewJobService(db *gorm.DB, uploads *storage.Store) *JobService {
	return &JobService{
		DB:      db,
		Uploads: uploads,
	}
}

// Create validates the submission and persists the job together with its
// category links in one transaction. Unknown category slugs are ignored.
func (s *JobService) Create(req dtos.JobCreationRequest) (*models.Job, error) {
	fields, err := validation.Job(req)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if len(req.Categories) > 0 {
		if err := s.DB.Where("slug IN ?", req.Categories).Find(&categories).Error; err != nil {
			return nil, err
		}
	}

	job := &models.Job{
		Title:       fields.Title,
		Hours:       fields.Hours,
		Rate:        fields.Rate,
		Description: fields.Description,
		Duration:    fields.Duration,
		StartDate:   fields.StartDate,
		Location:    fields.Location,
		Company:     fields.Company,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Create(job).Error; err != nil {
			return err
		}
		if len(categories) > 0 {
			if err := tx.Model(job).Association("Categories").Append(&categories); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

// List returns jobs newest first. A non-empty slug set narrows the result to
// jobs linked to ANY of the requested categories; a job only has to match one
// of them to be included. Unknown slugs simply never match.
func (s *JobService) List(slugs []string) ([]models.Job, error) {
	q := s.DB.Preload("Categories")
	if len(slugs) > 0 {
		q = q.
			Joins("JOIN job_categories jc ON jc.job_id = jobs.id").
			Joins("JOIN categories c ON c.id = jc.category_id").
			Where("c.slug IN ?", slugs).
			Group("jobs.id")
	}

	var jobs []models.Job
	if err := q.Order("jobs.created_at DESC, jobs.id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListWithApplications backs the admin overview: every job, newest first,
// with its reactions attached.
func (s *JobService) ListWithApplications() ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.
		Preload("Categories").
		Preload("Applications", func(db *gorm.DB) *gorm.DB {
			return db.Order("applications.created_at DESC, applications.id DESC")
		}).
		Order("jobs.created_at DESC, jobs.id DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) Get(id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.Preload("Categories").First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Delete removes the job, its category links, its applications and their
// stored CV files. Deleting an unknown id is a no-op, so the admin surface
// does not reveal which ids ever existed.
func (s *JobService) Delete(id uint) error {
	var cvFiles []string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Application{}).
			Where("job_id = ? AND cv_filename <> ''", id).
			Pluck("cv_filename", &cvFiles).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM job_categories WHERE job_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, id).Error
	})
	if err != nil {
		return err
	}

	// Record deletion is committed; leftover files are only a disk leak.
	for _, name := range cvFiles {
		if s.Uploads == nil {
			continue
		}
		if err := s.Uploads.Remove(name); err != nil {
			log.Warn().Err(err).Str("file", name).Msg("Failed to remove CV of deleted job")
		}
	}
	return nil
}
