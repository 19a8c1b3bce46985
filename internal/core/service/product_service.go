package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
	"github.com/dealfourwheel/marketplace-api/internal/core/ports"
)

const maxListLimit = 100

// ProductService implements listing creation and queries.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:          input.Name,
		Category:      input.Category,
		SellerEmail:   input.SellerEmail,
		SellerName:    input.SellerName,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		YearOfUse:     input.YearOfUse,
		Location:      input.Location,
		Phone:         input.Phone,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		PostedAt:      time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("seller", input.SellerEmail).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().
		Str("product_id", created.ID).
		Str("category", created.Category).
		Str("seller", created.SellerEmail).
		Msg("product created")

	return created, nil
}

// List returns products matching filter. A client-supplied limit is capped at
// maxListLimit; no limit means all matching products.
func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	if filter.Limit < 0 {
		filter.Limit = 0
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	return s.repo.List(ctx, filter)
}

func (s *ProductService) ListBySeller(ctx context.Context, email string) ([]*domain.Product, error) {
	return s.repo.FindBySeller(ctx, email)
}
