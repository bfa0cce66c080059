package content

import (
	"github.com/lunara-app/lunara-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxIconLen        = 100
	maxDescriptionLen = 2000
	maxSectionBodyLen = 10000
)

// CardInput holds parameters for creating or updating an info card.
type CardInput struct {
	Icon        string
	Title       string
	Description string
	Position    int
}

// Validate validates the card input.
func (i CardInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.Icon == "" {
		errs = append(errs, domain.FieldError{Field: "icon", Message: "required"})
	} else if len(i.Icon) > maxIconLen {
		errs = append(errs, domain.FieldError{Field: "icon", Message: "too long"})
	}

	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if i.Position < 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SectionInput holds parameters for creating or updating an accordion
// section.
type SectionInput struct {
	Title    string
	Content  string
	Position int
}

// Validate validates the section input.
func (i SectionInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if len(i.Content) > maxSectionBodyLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if i.Position < 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
