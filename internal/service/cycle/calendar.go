package cycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lunara-app/lunara-backend/internal/adapter/postgres/symptomlog"
	"github.com/lunara-app/lunara-backend/internal/domain"
	"github.com/lunara-app/lunara-backend/internal/service/cycle/projection"
	"github.com/lunara-app/lunara-backend/pkg/ctxutil"
)

// CalendarView is the assembled calendar for a window. Configured reports
// whether a cycle anchored the projection; while false the events are logged
// symptoms only.
type CalendarView struct {
	Configured bool
	Events     []domain.CalendarEvent
}

// Calendar assembles the user's calendar for the [from, to] window:
// projected cycle events derived from the most recent cycle, overlaid with
// the symptoms the user actually logged in that window.
//
// When the user has no cycle configured the projection is skipped and only
// logged symptoms are returned; the calendar read path never fails for a
// missing cycle. A failing symptom read degrades to projections only.
func (s *Service) Calendar(ctx context.Context, input CalendarInput) (*CalendarView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	from := domain.NormalizeDate(input.From)
	to := domain.NormalizeDate(input.To)

	var projected []domain.CalendarEvent
	configured := false

	anchor, err := s.cycles.GetMostRecent(ctx, userID)
	switch {
	case err == nil:
		events, projErr := projection.Project(*anchor, s.policy(), s.cfg.HorizonCycles)
		if projErr != nil {
			return nil, fmt.Errorf("cycle.Calendar project: %w", projErr)
		}
		projected = clipToWindow(events, from, to)
		configured = true
	case errors.Is(err, domain.ErrNotFound):
		s.log.DebugContext(ctx, "calendar without configured cycle",
			"user_id", userID.String())
	default:
		return nil, fmt.Errorf("cycle.Calendar get cycle: %w", err)
	}

	entries, err := s.entries.List(ctx, userID, symptomlog.Filter{From: &from, To: &to})
	if err != nil {
		s.log.WarnContext(ctx, "calendar symptom read failed, serving projections only",
			"user_id", userID.String(), "error", err.Error())
		entries = nil
	}

	return &CalendarView{
		Configured: configured,
		Events:     projection.Merge(projected, entries),
	}, nil
}

// clipToWindow keeps events whose [StartDate, EndDate] range overlaps [from, to].
func clipToWindow(events []domain.CalendarEvent, from, to time.Time) []domain.CalendarEvent {
	kept := make([]domain.CalendarEvent, 0, len(events))
	for _, ev := range events {
		if ev.EndDate.Before(from) || ev.StartDate.After(to) {
			continue
		}
		kept = append(kept, ev)
	}
	return kept
}
