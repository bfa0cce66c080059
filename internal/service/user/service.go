// Package user implements profile reads and admin user management.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	userrepo "github.com/lunara-app/lunara-backend/internal/adapter/postgres/user"
	"github.com/lunara-app/lunara-backend/internal/config"
	"github.com/lunara-app/lunara-backend/internal/domain"
)

// userRepo defines the user repository interface needed by this service.
type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, f userrepo.Filter) ([]*domain.User, error)
	Count(ctx context.Context, f userrepo.Filter) (int, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// tokenRepo revokes sessions when an account is removed.
type tokenRepo interface {
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by this service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenRepo
	tx     txManager
	cfg    config.AuthConfig
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenRepo, tx txManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		tokens: tokens,
		tx:     tx,
		cfg:    cfg,
	}
}
