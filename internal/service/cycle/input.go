package cycle

import (
	"time"

	"github.com/lunara-app/lunara-backend/internal/domain"
)

// CreateInput holds parameters for creating a cycle record.
type CreateInput struct {
	StartDate       time.Time
	CycleLengthDays int
	BleedLengthDays int // 0 means use the configured default
}

// Validate validates the create input against configured caps.
func (i CreateInput) Validate(maxCycleLen, maxBleedLen int) error {
	var errs []domain.FieldError

	if i.StartDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "required"})
	}

	if i.CycleLengthDays <= 0 {
		errs = append(errs, domain.FieldError{Field: "cycle_length_days", Message: "must be positive"})
	} else if i.CycleLengthDays > maxCycleLen {
		errs = append(errs, domain.FieldError{Field: "cycle_length_days", Message: "too long"})
	}

	if i.BleedLengthDays < 0 {
		errs = append(errs, domain.FieldError{Field: "bleed_length_days", Message: "must not be negative"})
	} else if i.BleedLengthDays > maxBleedLen {
		errs = append(errs, domain.FieldError{Field: "bleed_length_days", Message: "too long"})
	} else if i.BleedLengthDays > 0 && i.BleedLengthDays >= i.CycleLengthDays {
		errs = append(errs, domain.FieldError{Field: "bleed_length_days", Message: "must be shorter than the cycle"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CalendarInput holds the date window for calendar assembly.
type CalendarInput struct {
	From time.Time
	To   time.Time
}

// Validate validates the calendar window.
func (i CalendarInput) Validate() error {
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
