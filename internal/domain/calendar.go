package domain

import "time"

// EventKind identifies the type of a calendar annotation.
type EventKind string

const (
	EventKindBleedingDay   EventKind = "EXPECTED_BLEEDING_DAY"
	EventKindOvulationDay  EventKind = "OVULATION_DAY"
	EventKindFertileWindow EventKind = "FERTILE_WINDOW"
	EventKindSymptom       EventKind = "SYMPTOM"
)

func (k EventKind) String() string { return string(k) }

// CalendarEvent is one annotation on the calendar overlay. Projected events
// are background annotations derived fresh on every read and never persisted;
// symptom events are authoritative records of what the user logged. The two
// overlap freely: the calendar is an annotation overlay, not a reconciled
// ledger.
type CalendarEvent struct {
	Kind      EventKind
	Title     string
	StartDate time.Time // calendar date, midnight UTC
	EndDate   time.Time // inclusive; equal to StartDate for single-day events
	Projected bool
}
