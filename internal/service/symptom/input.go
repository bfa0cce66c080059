package symptom

import (
	"time"

	"github.com/google/uuid"

	"github.com/lunara-app/lunara-backend/internal/domain"
)

// LogInput holds parameters for logging a symptom occurrence.
// Exactly one of SymptomID or SymptomName must be set: an ID references a
// catalog symptom, a free-text name joins the catalog on first use.
type LogInput struct {
	SymptomID   *uuid.UUID
	SymptomName string
	EntryDate   time.Time
	Intensity   int
}

// Validate validates the log input.
func (i LogInput) Validate() error {
	var errs []domain.FieldError

	hasID := i.SymptomID != nil && *i.SymptomID != uuid.Nil
	hasName := i.SymptomName != ""

	switch {
	case !hasID && !hasName:
		errs = append(errs, domain.FieldError{Field: "symptom", Message: "symptom_id or symptom_name required"})
	case hasID && hasName:
		errs = append(errs, domain.FieldError{Field: "symptom", Message: "symptom_id and symptom_name are mutually exclusive"})
	case hasName && len(i.SymptomName) > 128:
		errs = append(errs, domain.FieldError{Field: "symptom_name", Message: "too long"})
	}

	if i.EntryDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "entry_date", Message: "required"})
	}

	if i.Intensity < domain.MinIntensity || i.Intensity > domain.MaxIntensity {
		errs = append(errs, domain.FieldError{Field: "intensity", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds parameters for listing symptom entries.
type ListInput struct {
	From      *time.Time
	To        *time.Time
	SymptomID *uuid.UUID
	Limit     int
	Offset    int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
