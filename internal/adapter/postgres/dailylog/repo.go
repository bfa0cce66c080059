// Package dailylog implements the daily log repository using PostgreSQL.
package dailylog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lunara-app/lunara-backend/internal/adapter/postgres"
	"github.com/lunara-app/lunara-backend/internal/domain"
)

// Repo provides daily log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new daily log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const logColumns = `id, user_id, cycle_id, log_date, cervical_mucus, basal_temperature, note, created_at`

// upsertSQL inserts a daily log or replaces the observations when the user
// already has a log for that date. One log per user per day.
const upsertSQL = `
INSERT INTO daily_logs (id, user_id, cycle_id, log_date, cervical_mucus, basal_temperature, note, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (user_id, log_date) DO UPDATE SET
    cycle_id = EXCLUDED.cycle_id,
    cervical_mucus = EXCLUDED.cervical_mucus,
    basal_temperature = EXCLUDED.basal_temperature,
    note = EXCLUDED.note
RETURNING ` + logColumns

const getByDateSQL = `
SELECT ` + logColumns + `
FROM daily_logs
WHERE user_id = $1
  AND log_date = $2`

const listByRangeSQL = `
SELECT ` + logColumns + `
FROM daily_logs
WHERE user_id = $1
  AND log_date >= $2
  AND log_date <= $3
ORDER BY log_date`

// Upsert inserts a daily log or updates the existing one for the same date.
func (r *Repo) Upsert(ctx context.Context, l *domain.DailyLog) (*domain.DailyLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, upsertSQL,
		l.ID, l.UserID, l.CycleID, l.LogDate, l.CervicalMucus, l.BasalTemperature, l.Note, l.CreatedAt)

	result, err := scanLog(row)
	if err != nil {
		return nil, postgres.MapError(err, "daily_log", l.ID)
	}

	return result, nil
}

// GetByDate returns the user's daily log for the given date.
// Returns domain.ErrNotFound when no log exists for that day.
func (r *Repo) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLog(querier.QueryRow(ctx, getByDateSQL, userID, date))
	if err != nil {
		return nil, postgres.MapError(err, "daily_log", uuid.Nil)
	}

	return l, nil
}

// ListByRange returns the user's daily logs with log_date in [from, to],
// ordered by date ascending. Returns an empty slice (not nil) when none exist.
func (r *Repo) ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.DailyLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByRangeSQL, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*domain.DailyLog, 0)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("list daily logs: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}

	return logs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLog(row rowScanner) (*domain.DailyLog, error) {
	var l domain.DailyLog
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.CycleID,
		&l.LogDate,
		&l.CervicalMucus,
		&l.BasalTemperature,
		&l.Note,
		&l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
