// Package cycle implements the Cycle repository using PostgreSQL.
package cycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lunara-app/lunara-backend/internal/adapter/postgres"
	"github.com/lunara-app/lunara-backend/internal/domain"
)

// Repo provides cycle persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new cycle repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const cycleColumns = `id, user_id, start_date, cycle_length_days, bleed_length_days, created_at`

const createSQL = `
INSERT INTO cycles (id, user_id, start_date, cycle_length_days, bleed_length_days, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + cycleColumns

const listByUserSQL = `
SELECT ` + cycleColumns + `
FROM cycles
WHERE user_id = $1
ORDER BY start_date DESC, created_at DESC`

const getMostRecentSQL = `
SELECT ` + cycleColumns + `
FROM cycles
WHERE user_id = $1
ORDER BY start_date DESC, created_at DESC
LIMIT 1`

// Create inserts a new cycle record and returns the persisted domain.Cycle.
func (r *Repo) Create(ctx context.Context, c *domain.Cycle) (*domain.Cycle, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		c.ID, c.UserID, c.StartDate, c.CycleLengthDays, c.BleedLengthDays, c.CreatedAt)

	result, err := scanCycle(row)
	if err != nil {
		return nil, postgres.MapError(err, "cycle", c.ID)
	}

	return result, nil
}

// ListByUser returns all cycles for a user, most recent start date first.
// Returns an empty slice (not nil) when the user has no cycles.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Cycle, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list cycles: %w", err)
	}
	defer rows.Close()

	cycles := make([]*domain.Cycle, 0)
	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			return nil, fmt.Errorf("list cycles: %w", err)
		}
		cycles = append(cycles, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cycles: %w", err)
	}

	return cycles, nil
}

// GetMostRecent returns the cycle with the latest start date for the user.
// Returns domain.ErrNotFound when the user has no cycles configured.
func (r *Repo) GetMostRecent(ctx context.Context, userID uuid.UUID) (*domain.Cycle, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCycle(querier.QueryRow(ctx, getMostRecentSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "cycle", uuid.Nil)
	}

	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCycle(row rowScanner) (*domain.Cycle, error) {
	var c domain.Cycle
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.StartDate,
		&c.CycleLengthDays,
		&c.BleedLengthDays,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
