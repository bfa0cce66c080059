// Package symptomlog implements the symptom entry repository using PostgreSQL.
// Reads join the symptoms catalog so entries carry their resolved symptom name.
package symptomlog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lunara-app/lunara-backend/internal/adapter/postgres"
	"github.com/lunara-app/lunara-backend/internal/domain"
)

// Repo provides symptom entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new symptom entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO symptom_entries (id, user_id, symptom_id, entry_date, intensity, cycle_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, symptom_id, entry_date, intensity, cycle_id, created_at`

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Create inserts a new symptom entry and returns the persisted record.
// The returned entry does not have SymptomName resolved; use List.
func (r *Repo) Create(ctx context.Context, e *domain.SymptomEntry) (*domain.SymptomEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var result domain.SymptomEntry
	err := querier.QueryRow(ctx, createSQL,
		e.ID, e.UserID, e.SymptomID, e.EntryDate, e.Intensity, e.CycleID, e.CreatedAt,
	).Scan(
		&result.ID,
		&result.UserID,
		&result.SymptomID,
		&result.EntryDate,
		&result.Intensity,
		&result.CycleID,
		&result.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "symptom_entry", e.ID)
	}

	result.SymptomName = e.SymptomName
	return &result, nil
}

// List returns the user's symptom entries matching the filter,
// ordered by entry date ascending, with symptom names resolved.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f Filter) ([]domain.SymptomEntry, error) {
	f.normalize()

	q := builder.
		Select(
			"se.id", "se.user_id", "se.symptom_id", "se.entry_date",
			"se.intensity", "se.cycle_id", "se.created_at",
			"s.name",
		).
		From("symptom_entries se").
		Join("symptoms s ON se.symptom_id = s.id").
		Where(sq.Eq{"se.user_id": userID}).
		OrderBy("se.entry_date, se.created_at").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	if f.From != nil {
		q = q.Where(sq.GtOrEq{"se.entry_date": *f.From})
	}
	if f.To != nil {
		q = q.Where(sq.LtOrEq{"se.entry_date": *f.To})
	}
	if f.SymptomID != nil {
		q = q.Where(sq.Eq{"se.symptom_id": *f.SymptomID})
	}
	if f.CycleID != nil {
		q = q.Where(sq.Eq{"se.cycle_id": *f.CycleID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list symptom entries query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list symptom entries: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("list symptom entries: %w", err)
	}

	return entries, nil
}

// ListByDate returns the user's symptom entries for a single day,
// ordered by creation time.
func (r *Repo) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.SymptomEntry, error) {
	const listByDateSQL = `
SELECT
    se.id, se.user_id, se.symptom_id, se.entry_date, se.intensity, se.cycle_id, se.created_at,
    s.name
FROM symptom_entries se
JOIN symptoms s ON se.symptom_id = s.id
WHERE se.user_id = $1
  AND se.entry_date = $2
ORDER BY se.created_at`

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByDateSQL, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list symptom entries by date: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("list symptom entries by date: %w", err)
	}

	return entries, nil
}

func scanEntries(rows pgx.Rows) ([]domain.SymptomEntry, error) {
	entries := make([]domain.SymptomEntry, 0)
	for rows.Next() {
		var e domain.SymptomEntry
		err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.SymptomID,
			&e.EntryDate,
			&e.Intensity,
			&e.CycleID,
			&e.CreatedAt,
			&e.SymptomName,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
