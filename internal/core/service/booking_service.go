package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
	"github.com/dealfourwheel/marketplace-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

// BookingService implements booking creation with optional idempotency.
type BookingService struct {
	repo   ports.BookingRepository
	dedup  DedupChecker
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, dedup DedupChecker, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, dedup: dedup, logger: logger}
}

// Create places a booking. When an idempotency key is provided and already
// seen, no new booking is written and Duplicate is set on the result.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*ports.CreateBookingResult, error) {
	if input.IdempotencyKey != "" && s.dedup != nil {
		isDup, err := s.dedup.IsDuplicate(ctx, input.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("dedup check failed, processing anyway")
		} else if isDup {
			s.logger.Debug().Str("idempotency_key", input.IdempotencyKey).Msg("duplicate booking skipped")
			return &ports.CreateBookingResult{Duplicate: true}, nil
		}
	}

	booking := &domain.Booking{
		ProductID:       input.ProductID,
		ProductName:     input.ProductName,
		Price:           input.Price,
		BuyerName:       input.BuyerName,
		BuyerEmail:      input.BuyerEmail,
		Phone:           input.Phone,
		MeetingLocation: input.MeetingLocation,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", input.ProductID).Msg("failed to create booking")
		return nil, err
	}

	if input.IdempotencyKey != "" && s.dedup != nil {
		if err := s.dedup.Mark(ctx, input.IdempotencyKey); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to set dedup key")
		}
	}

	s.logger.Info().
		Str("booking_id", created.ID).
		Str("product_id", created.ProductID).
		Str("buyer", created.BuyerEmail).
		Msg("booking created")

	return &ports.CreateBookingResult{Booking: created}, nil
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.repo.FindAll(ctx)
}
