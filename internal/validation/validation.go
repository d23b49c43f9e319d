package validation

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"vacaturebord/internal/dtos"
)

const (
	MaxTitleLen = 160
	MaxNameLen  = 120
	MinHours    = 1
	MaxHours    = 10000
	MaxCVBytes  = 5242880 // 5 MB
)

var validate = validator.New()

// FieldError names a single violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError enumerates every violated field of a submission, not just
// the first one found.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validatie mislukt: " + strings.Join(parts, "; ")
}

// Has reports whether the error names the given field.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// orNil returns the error only when something failed, typed as plain error so
// callers can do errors.As without tripping over typed-nil interfaces.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// JobFields holds a job submission after normalization.
type JobFields struct {
	Title       string
	Hours       int
	Rate        float64
	Description string
	Duration    string
	StartDate   *time.Time
	Location    string
	Company     string
}

// Job checks an admin job submission and normalizes hours, rate and
// start_date. On failure the returned error is a *ValidationError listing
// every bad field.
func Job(req dtos.JobCreationRequest) (JobFields, error) {
	verr := &ValidationError{}
	out := JobFields{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Duration:    strings.TrimSpace(req.Duration),
		Location:    strings.TrimSpace(req.Location),
		Company:     strings.TrimSpace(req.Company),
	}

	if out.Title == "" {
		verr.add("title", "titel is verplicht")
	} else if utf8.RuneCountInString(out.Title) > MaxTitleLen {
		verr.add("title", fmt.Sprintf("titel mag maximaal %d tekens zijn", MaxTitleLen))
	}

	if out.Description == "" {
		verr.add("description", "omschrijving is verplicht")
	}

	hours, err := strconv.Atoi(strings.TrimSpace(req.Hours))
	switch {
	case err != nil:
		verr.add("hours", "uren moet een geheel getal zijn")
	case hours < MinHours || hours > MaxHours:
		verr.add("hours", fmt.Sprintf("uren moet tussen %d en %d liggen", MinHours, MaxHours))
	default:
		out.Hours = hours
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(req.Rate), 64)
	switch {
	case err != nil:
		verr.add("rate", "tarief moet een getal zijn")
	case rate < 0:
		verr.add("rate", "tarief mag niet negatief zijn")
	default:
		out.Rate = rate
	}

	if s := strings.TrimSpace(req.StartDate); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			verr.add("start_date", "startdatum moet JJJJ-MM-DD zijn")
		} else {
			out.StartDate = &t
		}
	}

	return out, verr.orNil()
}

// Application checks the public reaction form. The optional CV is checked
// separately by CVFile so the caller can merge both error lists.
func Application(req dtos.ApplicationRequest) error {
	verr := &ValidationError{}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		verr.add("name", "naam is verplicht")
	} else if utf8.RuneCountInString(name) > MaxNameLen {
		verr.add("name", fmt.Sprintf("naam mag maximaal %d tekens zijn", MaxNameLen))
	}

	if err := validate.Var(strings.TrimSpace(req.Email), "required,email"); err != nil {
		verr.add("email", "een geldig e-mailadres is verplicht")
	}

	return verr.orNil()
}

// CVFile checks the upload constraints: .pdf extension (case-insensitive)
// and at most MaxCVBytes.
func CVFile(filename string, size int64) error {
	verr := &ValidationError{}

	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		verr.add("cv", "alleen PDF-bestanden zijn toegestaan")
	}
	if size > MaxCVBytes {
		verr.add("cv", "bestand mag maximaal 5 MB zijn")
	}

	return verr.orNil()
}

// Merge combines validation errors from independent checks into one list.
// Non-validation errors win immediately.
func Merge(errs ...error) error {
	merged := &ValidationError{}
	for _, err := range errs {
		if err == nil {
			continue
		}
		verr, ok := err.(*ValidationError)
		if !ok {
			return err
		}
		merged.Fields = append(merged.Fields, verr.Fields...)
	}
	return merged.orNil()
}
