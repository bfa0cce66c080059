package content

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lunara-app/lunara-backend/internal/domain"
	"github.com/lunara-app/lunara-backend/pkg/ctxutil"
)

// ListSections returns all accordion sections ordered by position. Public.
func (s *Service) ListSections(ctx context.Context) ([]*domain.AccordionSection, error) {
	sections, err := s.sections.ListSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("content.ListSections: %w", err)
	}
	return sections, nil
}

// CreateSection creates an accordion section. Admin only.
func (s *Service) CreateSection(ctx context.Context, input SectionInput) (*domain.AccordionSection, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	section, err := s.sections.CreateSection(ctx, &domain.AccordionSection{
		ID:        uuid.New(),
		Title:     input.Title,
		Content:   input.Content,
		Position:  input.Position,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("content.CreateSection: %w", err)
	}

	s.log.InfoContext(ctx, "accordion section created", slog.String("section_id", section.ID.String()))

	return section, nil
}

// UpdateSection replaces an accordion section's fields. Admin only.
func (s *Service) UpdateSection(ctx context.Context, id uuid.UUID, input SectionInput) (*domain.AccordionSection, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	section, err := s.sections.UpdateSection(ctx, &domain.AccordionSection{
		ID:       id,
		Title:    input.Title,
		Content:  input.Content,
		Position: input.Position,
	})
	if err != nil {
		return nil, fmt.Errorf("content.UpdateSection: %w", err)
	}

	s.log.InfoContext(ctx, "accordion section updated", slog.String("section_id", id.String()))

	return section, nil
}

// DeleteSection removes an accordion section. Admin only.
func (s *Service) DeleteSection(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.sections.DeleteSection(ctx, id); err != nil {
		return fmt.Errorf("content.DeleteSection: %w", err)
	}

	s.log.InfoContext(ctx, "accordion section deleted", slog.String("section_id", id.String()))

	return nil
}
