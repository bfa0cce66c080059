package dailylog

import (
	"time"

	"github.com/lunara-app/lunara-backend/internal/domain"
)

// Basal body temperature is recorded in degrees Celsius; values outside
// this range are measurement errors.
const (
	minBasalTemperature = 34.0
	maxBasalTemperature = 42.0
)

const maxNoteLen = 2000

// UpsertInput holds parameters for recording a day's observations. A second
// upsert for the same date replaces the previous observations.
type UpsertInput struct {
	LogDate          time.Time
	CervicalMucus    *domain.CervicalMucus
	BasalTemperature *float64
	Note             *string
}

// Validate validates the upsert input.
func (i UpsertInput) Validate() error {
	var errs []domain.FieldError

	if i.LogDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "log_date", Message: "required"})
	}

	if i.CervicalMucus != nil && !i.CervicalMucus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "cervical_mucus", Message: "unknown value"})
	}

	if i.BasalTemperature != nil && (*i.BasalTemperature < minBasalTemperature || *i.BasalTemperature > maxBasalTemperature) {
		errs = append(errs, domain.FieldError{Field: "basal_temperature", Message: "out of range"})
	}

	if i.Note != nil && len(*i.Note) > maxNoteLen {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RangeInput holds parameters for listing daily logs over a date range.
type RangeInput struct {
	From time.Time
	To   time.Time
}

// Validate validates the range input.
func (i RangeInput) Validate() error {
	var errs []domain.FieldError

	if i.From.IsZero() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "required"})
	}
	if i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	}
	if !i.From.IsZero() && !i.To.IsZero() && i.To.Before(i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
