package ports

import (
	"context"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Insert(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindAll(ctx context.Context) ([]*domain.Booking, error)
}
