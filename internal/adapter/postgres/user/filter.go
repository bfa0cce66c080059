package user

import "github.com/lunara-app/lunara-backend/internal/domain"

// Filter defines parameters for listing and paginating users.
type Filter struct {
	// Search performs ILIKE '%...%' on email and username.
	// nil or empty string means no text filter.
	Search *string

	// Role filters users with the given role.
	Role *domain.UserRole

	// Limit is the maximum number of users to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of users to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
