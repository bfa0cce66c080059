// Package symptom implements the symptom catalog and symptom logging operations.
package symptom

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lunara-app/lunara-backend/internal/adapter/postgres/symptomlog"
	"github.com/lunara-app/lunara-backend/internal/domain"
)

// catalogRepo defines the symptom catalog interface needed by this service.
type catalogRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Symptom, error)
	Create(ctx context.Context, s *domain.Symptom) (*domain.Symptom, error)
	List(ctx context.Context) ([]*domain.Symptom, error)
}

// entryRepo defines the symptom entry interface needed by this service.
type entryRepo interface {
	Create(ctx context.Context, e *domain.SymptomEntry) (*domain.SymptomEntry, error)
	List(ctx context.Context, userID uuid.UUID, f symptomlog.Filter) ([]domain.SymptomEntry, error)
}

// cycleRepo resolves the cycle a logged symptom belongs to.
type cycleRepo interface {
	GetMostRecent(ctx context.Context, userID uuid.UUID) (*domain.Cycle, error)
}

// txManager defines the transaction manager interface needed by this service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements symptom operations.
type Service struct {
	log     *slog.Logger
	catalog catalogRepo
	entries entryRepo
	cycles  cycleRepo
	tx      txManager
}

// NewService creates a new symptom service instance.
func NewService(logger *slog.Logger, catalog catalogRepo, entries entryRepo, cycles cycleRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "symptom"),
		catalog: catalog,
		entries: entries,
		cycles:  cycles,
		tx:      tx,
	}
}
