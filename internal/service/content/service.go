// Package content implements the editorial content surface: informational
// cards, the educational accordion and the daily tip. Reads are public,
// writes are admin only.
package content

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lunara-app/lunara-backend/internal/domain"
)

// cardRepo defines the info card storage interface needed by this service.
type cardRepo interface {
	CreateCard(ctx context.Context, c *domain.InfoCard) (*domain.InfoCard, error)
	GetCard(ctx context.Context, id uuid.UUID) (*domain.InfoCard, error)
	ListCards(ctx context.Context) ([]*domain.InfoCard, error)
	UpdateCard(ctx context.Context, c *domain.InfoCard) (*domain.InfoCard, error)
	DeleteCard(ctx context.Context, id uuid.UUID) error
}

// sectionRepo defines the accordion section storage interface needed by this
// service.
type sectionRepo interface {
	CreateSection(ctx context.Context, s *domain.AccordionSection) (*domain.AccordionSection, error)
	GetSection(ctx context.Context, id uuid.UUID) (*domain.AccordionSection, error)
	ListSections(ctx context.Context) ([]*domain.AccordionSection, error)
	UpdateSection(ctx context.Context, s *domain.AccordionSection) (*domain.AccordionSection, error)
	DeleteSection(ctx context.Context, id uuid.UUID) error
}

// Service implements editorial content operations.
type Service struct {
	log      *slog.Logger
	cards    cardRepo
	sections sectionRepo
}

// NewService creates a new content service instance.
func NewService(logger *slog.Logger, cards cardRepo, sections sectionRepo) *Service {
	return &Service{
		log:      logger.With("service", "content"),
		cards:    cards,
		sections: sections,
	}
}
