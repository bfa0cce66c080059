package symptom

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lunara-app/lunara-backend/internal/domain"
	"github.com/lunara-app/lunara-backend/pkg/ctxutil"
)

// Log records a symptom occurrence for the authenticated user.
//
// A free-text symptom name is always inserted into the catalog with the
// custom category; names are not deduplicated, so repeating a name yields a
// second catalog row. The entry is attributed to the user's most recent
// cycle when one exists.
func (s *Service) Log(ctx context.Context, input LogInput) (*domain.SymptomEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.SymptomName = strings.TrimSpace(input.SymptomName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.SymptomEntry

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var sym *domain.Symptom
		var err error

		if input.SymptomID != nil {
			sym, err = s.catalog.GetByID(txCtx, *input.SymptomID)
			if err != nil {
				return fmt.Errorf("resolve symptom: %w", err)
			}
		} else {
			sym, err = s.catalog.Create(txCtx, &domain.Symptom{
				ID:        uuid.New(),
				Name:      input.SymptomName,
				Category:  domain.SymptomCategoryCustom,
				CreatedAt: time.Now(),
			})
			if err != nil {
				return fmt.Errorf("create symptom: %w", err)
			}
		}

		entry := &domain.SymptomEntry{
			ID:          uuid.New(),
			UserID:      userID,
			SymptomID:   sym.ID,
			EntryDate:   domain.NormalizeDate(input.EntryDate),
			Intensity:   input.Intensity,
			CreatedAt:   time.Now(),
			SymptomName: sym.Name,
		}

		// Attribute the entry to the latest cycle when one is configured.
		cycle, err := s.cycles.GetMostRecent(txCtx, userID)
		switch {
		case err == nil:
			entry.CycleID = &cycle.ID
		case errors.Is(err, domain.ErrNotFound):
			// No cycle configured; the entry stands on its own.
		default:
			return fmt.Errorf("resolve cycle: %w", err)
		}

		created, err = s.entries.Create(txCtx, entry)
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}
		created.SymptomName = sym.Name

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("symptom.Log: %w", err)
	}

	s.log.InfoContext(ctx, "symptom logged",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", created.ID.String()))

	return created, nil
}

// List returns the user's symptom entries matching the input filter.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.SymptomEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := symptomFilter(input)

	entries, err := s.entries.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("symptom.List: %w", err)
	}

	return entries, nil
}

// Catalog returns the full symptom catalog.
func (s *Service) Catalog(ctx context.Context) ([]*domain.Symptom, error) {
	symptoms, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("symptom.Catalog: %w", err)
	}
	return symptoms, nil
}
