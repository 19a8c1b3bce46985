package ports

import (
	"context"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
)

// CreateUserInput carries the data accepted on self-registration.
// Role is taken as-is; elevated roles are provisioned out-of-band.
type CreateUserInput struct {
	Name     string
	Email    string
	Role     domain.Role
	Phone    string
	PhotoURL string
}

// UserService defines use-case operations for users, including the role
// resolution predicates used by classification endpoints and route guards.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	// GetByEmail returns the user record for email, or nil when none exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// RoleOf resolves the role of the user with the given email with a
	// fresh store lookup. A missing user classifies as domain.RoleUnset.
	RoleOf(ctx context.Context, email string) (domain.Role, error)
	IsBuyer(ctx context.Context, email string) (bool, error)
	IsSeller(ctx context.Context, email string) (bool, error)
	IsAdmin(ctx context.Context, email string) (bool, error)

	// Verify sets verified=true on the user with the given id.
	Verify(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
