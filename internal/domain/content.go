package domain

import (
	"time"

	"github.com/google/uuid"
)

// InfoCard is an editorial health-information card shown on the main view.
// Cards are ordered by Position, ascending.
type InfoCard struct {
	ID          uuid.UUID
	Icon        string
	Title       string
	Description string
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AccordionSection is one educational text section of the phases accordion.
// Sections are ordered by Position, ascending.
type AccordionSection struct {
	ID        uuid.UUID
	Title     string
	Content   string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
