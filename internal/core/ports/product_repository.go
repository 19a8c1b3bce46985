package ports

import (
	"context"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
)

// ProductFilter carries the optional query parameters for listing products.
type ProductFilter struct {
	Category string // empty = all categories
	Limit    int64  // <= 0 = no limit
}

// ProductRepository defines persistence operations for product listings.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// List returns products matching filter. An unknown category matches
	// nothing and yields an empty slice.
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	FindBySeller(ctx context.Context, email string) ([]*domain.Product, error)
}
