package models

import (
	"errors"
	"time"
)

// Domain errors shared by services and handlers.
var (
	ErrJobNotFound  = errors.New("vacature niet gevonden")
	ErrUnauthorized = errors.New("toegang geweigerd")
)

// Category is a fixed filter tag. The set is seeded at startup; jobs link to
// it through the job_categories join table.
type Category struct {
	ID    uint   `gorm:"primaryKey" json:"-"`
	Slug  string `gorm:"uniqueIndex;not null" json:"slug"`
	Label string `gorm:"not null" json:"label"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Title       string  `gorm:"size:160;not null" json:"title"`
	Hours       int     `gorm:"not null" json:"hours"`
	Rate        float64 `gorm:"not null" json:"rate"`
	Description string  `gorm:"type:text;not null" json:"description"`

	Duration  string     `json:"duration,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	Location  string     `json:"location,omitempty"`
	Company   string     `json:"company,omitempty"`

	Categories []Category `gorm:"many2many:job_categories" json:"categories"`

	// Association: filled by Preload where the admin listing needs it
	Applications []Application `json:"applications,omitempty"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Foreign Key: must reference an existing Job at insertion time
	JobID uint `gorm:"not null;index" json:"job_id"`

	Name    string `gorm:"size:120;not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `gorm:"type:text" json:"message,omitempty"`

	// CVFilename is the stored name under the upload dir, set only when a
	// valid PDF accompanied the submission.
	CVFilename string `json:"cv_filename,omitempty"`
}
