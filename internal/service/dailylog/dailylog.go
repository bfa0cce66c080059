package dailylog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lunara-app/lunara-backend/internal/domain"
	"github.com/lunara-app/lunara-backend/pkg/ctxutil"
)

// Upsert records the authenticated user's observations for a day. The log is
// attributed to the user's most recent cycle; recording a day before any
// cycle exists fails with ErrNoCycleConfigured. A repeated upsert for the
// same date replaces the stored observations.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*domain.DailyLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	cycle, err := s.cycles.GetMostRecent(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoCycleConfigured
		}
		return nil, fmt.Errorf("dailylog.Upsert: resolve cycle: %w", err)
	}

	l := &domain.DailyLog{
		ID:               uuid.New(),
		UserID:           userID,
		CycleID:          cycle.ID,
		LogDate:          domain.NormalizeDate(input.LogDate),
		CervicalMucus:    input.CervicalMucus,
		BasalTemperature: input.BasalTemperature,
		Note:             input.Note,
		CreatedAt:        time.Now(),
	}

	saved, err := s.logs.Upsert(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("dailylog.Upsert: %w", err)
	}

	s.log.InfoContext(ctx, "daily log saved",
		slog.String("user_id", userID.String()),
		slog.Time("log_date", saved.LogDate))

	return saved, nil
}

// GetByDate returns the user's daily log for a date with the day's symptom
// entries attached.
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*domain.DailyLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if date.IsZero() {
		return nil, domain.NewValidationError("date", "required")
	}
	day := domain.NormalizeDate(date)

	l, err := s.logs.GetByDate(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("dailylog.GetByDate: %w", err)
	}

	entries, err := s.entries.ListByDate(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("dailylog.GetByDate: attach symptoms: %w", err)
	}
	l.Symptoms = entries

	return l, nil
}

// ListByRange returns the user's daily logs for a date range, oldest first.
// Symptom entries are not attached on range reads.
func (s *Service) ListByRange(ctx context.Context, input RangeInput) ([]*domain.DailyLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	logs, err := s.logs.ListByRange(ctx, userID, domain.NormalizeDate(input.From), domain.NormalizeDate(input.To))
	if err != nil {
		return nil, fmt.Errorf("dailylog.ListByRange: %w", err)
	}

	return logs, nil
}
