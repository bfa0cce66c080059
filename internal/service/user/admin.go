package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	userrepo "github.com/lunara-app/lunara-backend/internal/adapter/postgres/user"
	"github.com/lunara-app/lunara-backend/internal/domain"
	"github.com/lunara-app/lunara-backend/pkg/ctxutil"
)

// CreateUserInput holds parameters for the admin user creation.
type CreateUserInput struct {
	Email    string
	Username string
	Password string
}

// Validate validates the create input. minPasswordLen comes from config.
func (i CreateUserInput) Validate(minPasswordLen int) error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(i.Email, "@") || len(i.Email) > 320 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > 64 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	} else if len(i.Password) > 72 {
		// bcrypt input limit
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateUser creates a regular user account on behalf of an administrator.
// The created account starts with the user role; use SetUserRole to promote.
// Returns ErrAlreadyExists if the email or username is already taken.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(s.cfg.MinPasswordLen); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser hash password: %w", err)
	}

	now := time.Now()
	u, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("user.CreateUser: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created by admin",
		slog.String("user_id", u.ID.String()))

	return u, nil
}

// ListInput holds parameters for the admin user listing.
type ListInput struct {
	Search string
	Role   *domain.UserRole
	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid role: must be 'user' or 'admin'"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListUsers returns a filtered, paginated user listing with the total count
// for the same filter. Admin only.
func (s *Service) ListUsers(ctx context.Context, input ListInput) ([]*domain.User, int, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, 0, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	f := userrepo.Filter{
		Role:   input.Role,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.Search != "" {
		f.Search = &input.Search
	}

	users, err := s.users.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}

	total, err := s.users.Count(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: count: %w", err)
	}

	return users, total, nil
}

// GetUser returns a single user's account. Admin only.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}

	return u, nil
}

// SetUserRole changes a user's role. Admin only; an admin cannot demote
// themselves.
func (s *Service) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "invalid role: must be 'user' or 'admin'")
	}

	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if callerID == targetUserID && role == domain.UserRoleUser {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	u, err := s.users.UpdateRole(ctx, targetUserID, role)
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()))

	return u, nil
}

// DeleteUser removes a user's account and revokes their sessions. Admin
// only; an admin cannot delete themselves.
func (s *Service) DeleteUser(ctx context.Context, targetUserID uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if callerID == targetUserID {
		return domain.NewValidationError("user_id", "cannot delete yourself")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.RevokeAllByUser(txCtx, targetUserID); err != nil {
			return fmt.Errorf("revoke sessions: %w", err)
		}
		if err := s.users.Delete(txCtx, targetUserID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("user.DeleteUser: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted",
		slog.String("target_user_id", targetUserID.String()))

	return nil
}
