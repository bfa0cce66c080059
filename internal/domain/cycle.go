package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultBleedLengthDays is used when a cycle is recorded without an explicit
// bleed length.
const DefaultBleedLengthDays = 5

// Cycle is one recorded menstrual cycle, anchored by the first day of
// bleeding. Cycles are append-only: there is no update or delete path, and
// projections always anchor on the most recently started cycle.
type Cycle struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	StartDate       time.Time // calendar date, midnight UTC
	CycleLengthDays int
	BleedLengthDays int
	CreatedAt       time.Time
}

// NormalizeDate truncates t to a calendar date at midnight UTC.
// All cycle arithmetic happens on normalized dates so DST and wall-clock
// offsets cannot shift a projection across day boundaries.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b (b - a).
// Both arguments are normalized before subtraction.
func DaysBetween(a, b time.Time) int {
	a = NormalizeDate(a)
	b = NormalizeDate(b)
	return int(b.Sub(a).Hours() / 24)
}
