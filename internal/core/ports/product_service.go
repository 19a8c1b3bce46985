package ports

import (
	"context"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a listing.
// SellerEmail is the authenticated caller's email, never client-supplied.
type CreateProductInput struct {
	Name          string
	Category      string
	SellerEmail   string
	SellerName    string
	Price         float64
	OriginalPrice float64
	YearOfUse     int
	Location      string
	Phone         string
	Description   string
	ImageURL      string
}

// ProductService defines use-case operations for product listings.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	ListBySeller(ctx context.Context, email string) ([]*domain.Product, error)
}
