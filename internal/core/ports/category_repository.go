package ports

import (
	"context"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
)

// CategoryRepository reads the seeded category collection.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*domain.Category, error)
}
