package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lunara-app/lunara-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the default role. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$10$seeded.hash.placeholder/for.integration.tests.only",
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Username, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCycle creates a cycle for the given user starting on startDate.
func SeedCycle(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, startDate time.Time) domain.Cycle {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	cycle := domain.Cycle{
		ID:              uuid.New(),
		UserID:          userID,
		StartDate:       domain.NormalizeDate(startDate),
		CycleLengthDays: 28,
		BleedLengthDays: domain.DefaultBleedLengthDays,
		CreatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO cycles (id, user_id, start_date, cycle_length_days, bleed_length_days, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		cycle.ID, cycle.UserID, cycle.StartDate, cycle.CycleLengthDays, cycle.BleedLengthDays, cycle.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCycle insert: %v", err)
	}

	return cycle
}

// SeedSymptom creates a catalog symptom with a unique name.
func SeedSymptom(t *testing.T, pool *pgxpool.Pool, category string) domain.Symptom {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	symptom := domain.Symptom{
		ID:        uuid.New(),
		Name:      "symptom-" + uniqueSuffix(),
		Category:  category,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO symptoms (id, name, category, created_at)
		 VALUES ($1, $2, $3, $4)`,
		symptom.ID, symptom.Name, symptom.Category, symptom.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSymptom insert: %v", err)
	}

	return symptom
}

// SeedSymptomEntry creates a symptom entry for the given user and symptom.
func SeedSymptomEntry(t *testing.T, pool *pgxpool.Pool, userID, symptomID uuid.UUID, entryDate time.Time) domain.SymptomEntry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.SymptomEntry{
		ID:        uuid.New(),
		UserID:    userID,
		SymptomID: symptomID,
		EntryDate: domain.NormalizeDate(entryDate),
		Intensity: 3,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO symptom_entries (id, user_id, symptom_id, entry_date, intensity, cycle_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.UserID, entry.SymptomID, entry.EntryDate, entry.Intensity, entry.CycleID, entry.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSymptomEntry insert: %v", err)
	}

	return entry
}

// SeedDailyLog creates a daily log for the given user, cycle, and date.
func SeedDailyLog(t *testing.T, pool *pgxpool.Pool, userID, cycleID uuid.UUID, logDate time.Time) domain.DailyLog {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	note := "seeded note " + uniqueSuffix()
	log := domain.DailyLog{
		ID:        uuid.New(),
		UserID:    userID,
		CycleID:   cycleID,
		LogDate:   domain.NormalizeDate(logDate),
		Note:      &note,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO daily_logs (id, user_id, cycle_id, log_date, cervical_mucus, basal_temperature, note, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		log.ID, log.UserID, log.CycleID, log.LogDate, log.CervicalMucus, log.BasalTemperature, log.Note, log.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDailyLog insert: %v", err)
	}

	return log
}

// SeedInfoCard creates an editorial info card at the given position.
func SeedInfoCard(t *testing.T, pool *pgxpool.Pool, position int) domain.InfoCard {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.InfoCard{
		ID:          uuid.New(),
		Icon:        "drop",
		Title:       "Card " + uniqueSuffix(),
		Description: "Seeded card description.",
		Position:    position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO info_cards (id, icon, title, description, position, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		card.ID, card.Icon, card.Title, card.Description, card.Position, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInfoCard insert: %v", err)
	}

	return card
}

// SeedAccordionSection creates an accordion section at the given position.
func SeedAccordionSection(t *testing.T, pool *pgxpool.Pool, position int) domain.AccordionSection {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	section := domain.AccordionSection{
		ID:        uuid.New(),
		Title:     "Section " + uniqueSuffix(),
		Content:   "Seeded section content.",
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO accordion_sections (id, title, content, position, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		section.ID, section.Title, section.Content, section.Position, section.CreatedAt, section.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccordionSection insert: %v", err)
	}

	return section
}
