package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyLog is a per-day wellbeing record: cervical mucus observation, basal
// body temperature and a free-form note, linked to the cycle it was logged
// under. Logged symptoms for the same day are attached on reads.
type DailyLog struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	CycleID          uuid.UUID
	LogDate          time.Time // calendar date, midnight UTC
	CervicalMucus    *CervicalMucus
	BasalTemperature *float64 // degrees Celsius
	Note             *string
	CreatedAt        time.Time
	Symptoms         []SymptomEntry
}
