package ports

import (
	"context"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
)

// CreateBookingInput carries all data needed to place a booking.
type CreateBookingInput struct {
	ProductID       string
	ProductName     string
	Price           float64
	BuyerName       string
	BuyerEmail      string
	Phone           string
	MeetingLocation string
	// IdempotencyKey, when non-empty, suppresses duplicate submissions.
	IdempotencyKey string
}

// CreateBookingResult is returned by the service after placing a booking.
type CreateBookingResult struct {
	Booking *domain.Booking
	// Duplicate is true when the Idempotency-Key was already seen and no
	// new booking was written.
	Duplicate bool
}

// BookingService defines use-case operations for bookings.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error)
	List(ctx context.Context) ([]*domain.Booking, error)
}
