// Package dailylog implements per-day wellbeing records: cervical mucus,
// basal temperature and notes, with the day's symptom entries attached on
// reads.
package dailylog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lunara-app/lunara-backend/internal/domain"
)

// logRepo defines the daily log storage interface needed by this service.
type logRepo interface {
	Upsert(ctx context.Context, l *domain.DailyLog) (*domain.DailyLog, error)
	GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyLog, error)
	ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.DailyLog, error)
}

// entryRepo resolves the symptom entries attached to a day.
type entryRepo interface {
	ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.SymptomEntry, error)
}

// cycleRepo resolves the cycle a daily log belongs to.
type cycleRepo interface {
	GetMostRecent(ctx context.Context, userID uuid.UUID) (*domain.Cycle, error)
}

// Service implements daily log operations.
type Service struct {
	log     *slog.Logger
	logs    logRepo
	entries entryRepo
	cycles  cycleRepo
}

// NewService creates a new daily log service instance.
func NewService(logger *slog.Logger, logs logRepo, entries entryRepo, cycles cycleRepo) *Service {
	return &Service{
		log:     logger.With("service", "dailylog"),
		logs:    logs,
		entries: entries,
		cycles:  cycles,
	}
}
