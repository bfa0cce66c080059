package cycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lunara-app/lunara-backend/internal/domain"
	"github.com/lunara-app/lunara-backend/internal/service/cycle/projection"
	"github.com/lunara-app/lunara-backend/pkg/ctxutil"
)

// Statistics computes the user's cycle statistics as of today.
// Returns ErrNoCycleConfigured when the user has no cycle history.
func (s *Service) Statistics(ctx context.Context) (projection.Stats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return projection.Stats{}, domain.ErrUnauthorized
	}

	cycles, err := s.cycles.ListByUser(ctx, userID)
	if err != nil {
		return projection.Stats{}, fmt.Errorf("cycle.Statistics: %w", err)
	}

	history := make([]domain.Cycle, len(cycles))
	for i, c := range cycles {
		history[i] = *c
	}

	stats, err := projection.Statistics(history, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNoCycleConfigured) {
			return projection.Stats{}, domain.ErrNoCycleConfigured
		}
		return projection.Stats{}, fmt.Errorf("cycle.Statistics: %w", err)
	}

	return stats, nil
}
