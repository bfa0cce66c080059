// Package symptom implements the symptom catalog repository using PostgreSQL.
package symptom

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lunara-app/lunara-backend/internal/adapter/postgres"
	"github.com/lunara-app/lunara-backend/internal/domain"
)

// Repo provides symptom catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new symptom repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const symptomColumns = `id, name, category, created_at`

const createSQL = `
INSERT INTO symptoms (id, name, category, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + symptomColumns

const getByIDSQL = `
SELECT ` + symptomColumns + `
FROM symptoms
WHERE id = $1`

const getByNameSQL = `
SELECT ` + symptomColumns + `
FROM symptoms
WHERE name = $1
ORDER BY created_at
LIMIT 1`

const listSQL = `
SELECT ` + symptomColumns + `
FROM symptoms
ORDER BY category, name`

// Create inserts a new catalog symptom. Names are not deduplicated:
// inserting an already-present name yields a second catalog row.
func (r *Repo) Create(ctx context.Context, s *domain.Symptom) (*domain.Symptom, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL, s.ID, s.Name, s.Category, s.CreatedAt)

	result, err := scanSymptom(row)
	if err != nil {
		return nil, postgres.MapError(err, "symptom", s.ID)
	}

	return result, nil
}

// GetByID returns a catalog symptom by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Symptom, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSymptom(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "symptom", id)
	}

	return s, nil
}

// GetByName returns the oldest catalog symptom carrying the given name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Symptom, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSymptom(querier.QueryRow(ctx, getByNameSQL, name))
	if err != nil {
		return nil, postgres.MapError(err, "symptom", uuid.Nil)
	}

	return s, nil
}

// List returns the full symptom catalog ordered by category, then name.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) List(ctx context.Context) ([]*domain.Symptom, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list symptoms: %w", err)
	}
	defer rows.Close()

	symptoms := make([]*domain.Symptom, 0)
	for rows.Next() {
		s, err := scanSymptom(rows)
		if err != nil {
			return nil, fmt.Errorf("list symptoms: %w", err)
		}
		symptoms = append(symptoms, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list symptoms: %w", err)
	}

	return symptoms, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSymptom(row rowScanner) (*domain.Symptom, error) {
	var s domain.Symptom
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Category,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
