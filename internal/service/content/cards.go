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

// ListCards returns all info cards ordered by position. Public.
func (s *Service) ListCards(ctx context.Context) ([]*domain.InfoCard, error) {
	cards, err := s.cards.ListCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("content.ListCards: %w", err)
	}
	return cards, nil
}

// CreateCard creates an info card. Admin only.
func (s *Service) CreateCard(ctx context.Context, input CardInput) (*domain.InfoCard, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	card, err := s.cards.CreateCard(ctx, &domain.InfoCard{
		ID:          uuid.New(),
		Icon:        input.Icon,
		Title:       input.Title,
		Description: input.Description,
		Position:    input.Position,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("content.CreateCard: %w", err)
	}

	s.log.InfoContext(ctx, "info card created", slog.String("card_id", card.ID.String()))

	return card, nil
}

// UpdateCard replaces an info card's fields. Admin only.
func (s *Service) UpdateCard(ctx context.Context, id uuid.UUID, input CardInput) (*domain.InfoCard, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.cards.UpdateCard(ctx, &domain.InfoCard{
		ID:          id,
		Icon:        input.Icon,
		Title:       input.Title,
		Description: input.Description,
		Position:    input.Position,
	})
	if err != nil {
		return nil, fmt.Errorf("content.UpdateCard: %w", err)
	}

	s.log.InfoContext(ctx, "info card updated", slog.String("card_id", id.String()))

	return card, nil
}

// DeleteCard removes an info card. Admin only.
func (s *Service) DeleteCard(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.cards.DeleteCard(ctx, id); err != nil {
		return fmt.Errorf("content.DeleteCard: %w", err)
	}

	s.log.InfoContext(ctx, "info card deleted", slog.String("card_id", id.String()))

	return nil
}
