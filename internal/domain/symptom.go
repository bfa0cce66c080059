package domain

import (
	"time"

	"github.com/google/uuid"
)

// SymptomCategoryCustom is assigned to catalog entries created on the fly
// when a user logs a symptom by free-text name.
const SymptomCategoryCustom = "custom"

// Symptom is a named, reusable catalog entry, distinct from a logged
// occurrence of it. The catalog is seeded administratively and grows when
// users log free-text symptoms; duplicates by name are allowed.
type Symptom struct {
	ID        uuid.UUID
	Name      string
	Category  string
	CreatedAt time.Time
}

// SymptomEntry is one logged occurrence of a symptom on a calendar date.
// Entries are append-only: once logged they are never edited or removed.
type SymptomEntry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	SymptomID   uuid.UUID
	EntryDate   time.Time // calendar date, midnight UTC
	Intensity   int       // MinIntensity..MaxIntensity
	CycleID     *uuid.UUID
	CreatedAt   time.Time
	SymptomName string // resolved catalog name, populated on reads
}
