// Package projection implements the deterministic forward projection of
// future cycle windows from a single anchor cycle. It is pure date
// arithmetic: no I/O, no dependency on the current time, and nothing here is
// ever persisted.
package projection

import (
	"fmt"

	"github.com/lunara-app/lunara-backend/internal/domain"
)

// DefaultHorizonCycles is how many future cycles are projected when the
// caller does not ask for a specific horizon.
const DefaultHorizonCycles = 6

// Policy holds the heuristic day offsets used for projection. The fertile
// window and ovulation offsets are population-level heuristics relative to
// cycle start, not personalized predictions.
type Policy struct {
	// OvulationOffsetDays is added to each cycle start to place the single
	// ovulation-day event.
	OvulationOffsetDays int
	// FertileStartOffsetDays and FertileEndOffsetDays bound the fertile
	// window relative to cycle start, both inclusive.
	FertileStartOffsetDays int
	FertileEndOffsetDays   int
}

// DefaultPolicy returns the standard luteal-phase heuristic: ovulation on
// day start+14, fertile window start+10 through start+15 inclusive.
func DefaultPolicy() Policy {
	return Policy{
		OvulationOffsetDays:    14,
		FertileStartOffsetDays: 10,
		FertileEndOffsetDays:   15,
	}
}

// Project generates calendar annotations for horizonCycles consecutive
// cycles anchored on anchor.StartDate. For each cycle it emits one
// background bleeding-day event per expected bleeding day, one ovulation-day
// event, and one fertile-window range event.
//
// Output is deterministic for identical inputs and is computed relative to
// the anchor only: ranges entirely in the past are emitted too, and callers
// filter for "upcoming" at presentation time if they want to.
//
// Returns domain.ErrInvalidCycleLength if the anchor's cycle length is not a
// positive number of days; no events are emitted in that case.
func Project(anchor domain.Cycle, policy Policy, horizonCycles int) ([]domain.CalendarEvent, error) {
	if anchor.CycleLengthDays <= 0 {
		return nil, fmt.Errorf("cycle length %d: %w", anchor.CycleLengthDays, domain.ErrInvalidCycleLength)
	}
	if horizonCycles <= 0 {
		horizonCycles = DefaultHorizonCycles
	}

	bleedLen := anchor.BleedLengthDays
	if bleedLen <= 0 {
		bleedLen = domain.DefaultBleedLengthDays
	}

	start := domain.NormalizeDate(anchor.StartDate)
	events := make([]domain.CalendarEvent, 0, horizonCycles*(bleedLen+2))

	for i := 0; i < horizonCycles; i++ {
		cycleStart := start.AddDate(0, 0, i*anchor.CycleLengthDays)

		for j := 0; j < bleedLen; j++ {
			day := cycleStart.AddDate(0, 0, j)
			events = append(events, domain.CalendarEvent{
				Kind:      domain.EventKindBleedingDay,
				StartDate: day,
				EndDate:   day,
				Projected: true,
			})
		}

		ovulation := cycleStart.AddDate(0, 0, policy.OvulationOffsetDays)
		events = append(events, domain.CalendarEvent{
			Kind:      domain.EventKindOvulationDay,
			Title:     "Ovulation",
			StartDate: ovulation,
			EndDate:   ovulation,
			Projected: true,
		})

		events = append(events, domain.CalendarEvent{
			Kind:      domain.EventKindFertileWindow,
			StartDate: cycleStart.AddDate(0, 0, policy.FertileStartOffsetDays),
			EndDate:   cycleStart.AddDate(0, 0, policy.FertileEndOffsetDays),
			Projected: true,
		})
	}

	return events, nil
}

// Merge concatenates projected events with one authoritative event per
// logged symptom entry. There is no deduplication and no conflict
// resolution: a symptom logged on a projected bleeding day yields two
// independent overlapping annotations. That is the intended overlay
// behavior, not an oversight.
func Merge(projected []domain.CalendarEvent, logged []domain.SymptomEntry) []domain.CalendarEvent {
	merged := make([]domain.CalendarEvent, 0, len(projected)+len(logged))
	merged = append(merged, projected...)

	for _, entry := range logged {
		title := entry.SymptomName
		if title == "" {
			title = "Symptom"
		}
		day := domain.NormalizeDate(entry.EntryDate)
		merged = append(merged, domain.CalendarEvent{
			Kind:      domain.EventKindSymptom,
			Title:     title,
			StartDate: day,
			EndDate:   day,
			Projected: false,
		})
	}

	return merged
}
