package cycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lunara-app/lunara-backend/internal/domain"
	"github.com/lunara-app/lunara-backend/pkg/ctxutil"
)

// Create records a new cycle for the authenticated user.
// A zero BleedLengthDays falls back to the configured default.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Cycle, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxCycleLengthDays, s.cfg.MaxBleedLengthDays); err != nil {
		return nil, err
	}

	bleedLen := input.BleedLengthDays
	if bleedLen == 0 {
		bleedLen = s.cfg.DefaultBleedDays
	}

	cycle := &domain.Cycle{
		ID:              uuid.New(),
		UserID:          userID,
		StartDate:       domain.NormalizeDate(input.StartDate),
		CycleLengthDays: input.CycleLengthDays,
		BleedLengthDays: bleedLen,
		CreatedAt:       time.Now(),
	}

	created, err := s.cycles.Create(ctx, cycle)
	if err != nil {
		return nil, fmt.Errorf("cycle.Create: %w", err)
	}

	s.log.InfoContext(ctx, "cycle recorded",
		slog.String("user_id", userID.String()),
		slog.String("cycle_id", created.ID.String()),
		slog.Int("length_days", created.CycleLengthDays))

	return created, nil
}

// List returns the user's cycle history, most recent first.
func (s *Service) List(ctx context.Context) ([]*domain.Cycle, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cycles, err := s.cycles.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cycle.List: %w", err)
	}

	return cycles, nil
}
