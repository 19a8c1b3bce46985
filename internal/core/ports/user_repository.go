package ports

import (
	"context"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
// Lookups that match nothing return nil (or an empty slice), never an error:
// absence of a user is a valid result, not a failure.
type UserRepository interface {
	Insert(ctx context.Context, u *domain.User) (*domain.User, error)
	// FindByEmail returns the first user with the given email, or nil when
	// no record matches. Email uniqueness is not enforced by the store.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	// SetVerified marks the user with the given id as verified (upsert).
	// A malformed id yields domain.ErrInvalidID.
	SetVerified(ctx context.Context, id string) error
	// Delete removes the user with the given id. Deleting a missing user is
	// not distinguished from success.
	Delete(ctx context.Context, id string) error
}
