package symptomlog

import (
	"time"

	"github.com/google/uuid"
)

// Filter defines parameters for listing symptom entries.
type Filter struct {
	// From restricts entries to entry_date >= From (inclusive). nil means unbounded.
	From *time.Time

	// To restricts entries to entry_date <= To (inclusive). nil means unbounded.
	To *time.Time

	// SymptomID filters entries for a single catalog symptom.
	SymptomID *uuid.UUID

	// CycleID filters entries attributed to a single cycle.
	CycleID *uuid.UUID

	// Limit is the maximum number of entries to return. Default: 100, max: 500.
	Limit int

	// Offset is the number of entries to skip.
	Offset int
}

const (
	defaultLimit = 100
	maxLimit     = 500
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
