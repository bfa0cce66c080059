package projection

import (
	"time"

	"github.com/lunara-app/lunara-backend/internal/domain"
)

// Stats summarizes a user's cycle history relative to a given day.
type Stats struct {
	// AverageLengthDays is the arithmetic mean of cycle lengths across the
	// whole history, rounded half-up.
	AverageLengthDays int
	// CurrentCycleDay is the 1-based day number within the current cycle.
	CurrentCycleDay int
	// DaysUntilNextPeriod counts down to the next expected cycle start.
	// On the exact boundary (today is a projected start date) it is 0, never
	// a full cycle.
	DaysUntilNextPeriod int
}

// Statistics computes cycle statistics from the full recorded history.
// The most recently started cycle anchors the day counting; the whole
// history feeds the average. The call is a pure function of (history, today)
// and therefore idempotent.
//
// Boundary convention: day counting is 1-based and wraps, so when today is
// exactly a whole number of cycles after the anchor the result reads
// "day 1 of a new cycle, 0 days until the next period". The alternative
// "day N, N days left" display was rejected because it reports a period that
// is due today as a full cycle away.
//
// Returns domain.ErrNoCycleConfigured on empty history.
func Statistics(history []domain.Cycle, today time.Time) (Stats, error) {
	if len(history) == 0 {
		return Stats{}, domain.ErrNoCycleConfigured
	}

	mostRecent := history[0]
	sum := 0
	for _, c := range history {
		sum += c.CycleLengthDays
		if c.StartDate.After(mostRecent.StartDate) {
			mostRecent = c
		}
	}
	if mostRecent.CycleLengthDays <= 0 {
		return Stats{}, domain.ErrInvalidCycleLength
	}

	// Round half-up without importing math: (2*sum + n) / 2n.
	n := len(history)
	avg := (2*sum + n) / (2 * n)

	elapsed := domain.DaysBetween(mostRecent.StartDate, today)
	if elapsed < 0 {
		elapsed = 0
	}
	dayInCycle := elapsed % mostRecent.CycleLengthDays

	stats := Stats{
		AverageLengthDays:   avg,
		CurrentCycleDay:     dayInCycle + 1,
		DaysUntilNextPeriod: mostRecent.CycleLengthDays - dayInCycle,
	}
	if dayInCycle == 0 {
		// Exact boundary: a new cycle starts today.
		stats.DaysUntilNextPeriod = 0
	}
	return stats, nil
}
