package ports

import (
	"context"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
)

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
}
