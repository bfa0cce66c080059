// Package content implements the editorial content repositories using PostgreSQL.
// It covers info cards and accordion sections, both ordered by position.
package content

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lunara-app/lunara-backend/internal/adapter/postgres"
	"github.com/lunara-app/lunara-backend/internal/domain"
)

// Repo provides editorial content persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new content repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Info cards
// ---------------------------------------------------------------------------

const cardColumns = `id, icon, title, description, position, created_at, updated_at`

const createCardSQL = `
INSERT INTO info_cards (id, icon, title, description, position, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + cardColumns

const getCardSQL = `
SELECT ` + cardColumns + `
FROM info_cards
WHERE id = $1`

const listCardsSQL = `
SELECT ` + cardColumns + `
FROM info_cards
ORDER BY position, created_at`

const updateCardSQL = `
UPDATE info_cards
SET icon = $2, title = $3, description = $4, position = $5, updated_at = now()
WHERE id = $1
RETURNING ` + cardColumns

const deleteCardSQL = `
DELETE FROM info_cards
WHERE id = $1`

// CreateCard inserts a new info card.
func (r *Repo) CreateCard(ctx context.Context, c *domain.InfoCard) (*domain.InfoCard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createCardSQL,
		c.ID, c.Icon, c.Title, c.Description, c.Position, c.CreatedAt, c.UpdatedAt)

	result, err := scanCard(row)
	if err != nil {
		return nil, postgres.MapError(err, "info_card", c.ID)
	}

	return result, nil
}

// GetCard returns an info card by primary key.
func (r *Repo) GetCard(ctx context.Context, id uuid.UUID) (*domain.InfoCard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCard(querier.QueryRow(ctx, getCardSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "info_card", id)
	}

	return c, nil
}

// ListCards returns all info cards ordered by position.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListCards(ctx context.Context) ([]*domain.InfoCard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listCardsSQL)
	if err != nil {
		return nil, fmt.Errorf("list info cards: %w", err)
	}
	defer rows.Close()

	cards := make([]*domain.InfoCard, 0)
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("list info cards: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list info cards: %w", err)
	}

	return cards, nil
}

// UpdateCard replaces an info card's content and position.
// Returns domain.ErrNotFound if the card does not exist.
func (r *Repo) UpdateCard(ctx context.Context, c *domain.InfoCard) (*domain.InfoCard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateCardSQL,
		c.ID, c.Icon, c.Title, c.Description, c.Position)

	result, err := scanCard(row)
	if err != nil {
		return nil, postgres.MapError(err, "info_card", c.ID)
	}

	return result, nil
}

// DeleteCard removes an info card.
// Returns domain.ErrNotFound if the card does not exist.
func (r *Repo) DeleteCard(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteCardSQL, id)
	if err != nil {
		return postgres.MapError(err, "info_card", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("info_card %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Accordion sections
// ---------------------------------------------------------------------------

const sectionColumns = `id, title, content, position, created_at, updated_at`

const createSectionSQL = `
INSERT INTO accordion_sections (id, title, content, position, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + sectionColumns

const getSectionSQL = `
SELECT ` + sectionColumns + `
FROM accordion_sections
WHERE id = $1`

const listSectionsSQL = `
SELECT ` + sectionColumns + `
FROM accordion_sections
ORDER BY position, created_at`

const updateSectionSQL = `
UPDATE accordion_sections
SET title = $2, content = $3, position = $4, updated_at = now()
WHERE id = $1
RETURNING ` + sectionColumns

const deleteSectionSQL = `
DELETE FROM accordion_sections
WHERE id = $1`

// CreateSection inserts a new accordion section.
func (r *Repo) CreateSection(ctx context.Context, s *domain.AccordionSection) (*domain.AccordionSection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSectionSQL,
		s.ID, s.Title, s.Content, s.Position, s.CreatedAt, s.UpdatedAt)

	result, err := scanSection(row)
	if err != nil {
		return nil, postgres.MapError(err, "accordion_section", s.ID)
	}

	return result, nil
}

// GetSection returns an accordion section by primary key.
func (r *Repo) GetSection(ctx context.Context, id uuid.UUID) (*domain.AccordionSection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSection(querier.QueryRow(ctx, getSectionSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "accordion_section", id)
	}

	return s, nil
}

// ListSections returns all accordion sections ordered by position.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListSections(ctx context.Context) ([]*domain.AccordionSection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSectionsSQL)
	if err != nil {
		return nil, fmt.Errorf("list accordion sections: %w", err)
	}
	defer rows.Close()

	sections := make([]*domain.AccordionSection, 0)
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("list accordion sections: %w", err)
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accordion sections: %w", err)
	}

	return sections, nil
}

// UpdateSection replaces an accordion section's content and position.
// Returns domain.ErrNotFound if the section does not exist.
func (r *Repo) UpdateSection(ctx context.Context, s *domain.AccordionSection) (*domain.AccordionSection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateSectionSQL,
		s.ID, s.Title, s.Content, s.Position)

	result, err := scanSection(row)
	if err != nil {
		return nil, postgres.MapError(err, "accordion_section", s.ID)
	}

	return result, nil
}

// DeleteSection removes an accordion section.
// Returns domain.ErrNotFound if the section does not exist.
func (r *Repo) DeleteSection(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSectionSQL, id)
	if err != nil {
		return postgres.MapError(err, "accordion_section", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("accordion_section %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*domain.InfoCard, error) {
	var c domain.InfoCard
	err := row.Scan(
		&c.ID,
		&c.Icon,
		&c.Title,
		&c.Description,
		&c.Position,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanSection(row rowScanner) (*domain.AccordionSection, error) {
	var s domain.AccordionSection
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Content,
		&s.Position,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
