// Package cycle implements cycle configuration, statistics, and calendar assembly.
package cycle

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lunara-app/lunara-backend/internal/adapter/postgres/symptomlog"
	"github.com/lunara-app/lunara-backend/internal/config"
	"github.com/lunara-app/lunara-backend/internal/domain"
	"github.com/lunara-app/lunara-backend/internal/service/cycle/projection"
)

// cycleRepo defines the cycle repository interface needed by the cycle service.
type cycleRepo interface {
	Create(ctx context.Context, c *domain.Cycle) (*domain.Cycle, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Cycle, error)
	GetMostRecent(ctx context.Context, userID uuid.UUID) (*domain.Cycle, error)
}

// entryRepo provides the logged symptom entries merged into calendar output.
type entryRepo interface {
	List(ctx context.Context, userID uuid.UUID, f symptomlog.Filter) ([]domain.SymptomEntry, error)
}

// Service implements cycle operations.
type Service struct {
	log     *slog.Logger
	cycles  cycleRepo
	entries entryRepo
	cfg     config.CycleConfig
}

// NewService creates a new cycle service instance.
func NewService(logger *slog.Logger, cycles cycleRepo, entries entryRepo, cfg config.CycleConfig) *Service {
	return &Service{
		log:     logger.With("service", "cycle"),
		cycles:  cycles,
		entries: entries,
		cfg:     cfg,
	}
}

// policy builds the projection policy from configuration.
func (s *Service) policy() projection.Policy {
	return projection.Policy{
		OvulationOffsetDays:    s.cfg.OvulationOffset,
		FertileStartOffsetDays: s.cfg.FertileStartOffset,
		FertileEndOffsetDays:   s.cfg.FertileEndOffset,
	}
}
