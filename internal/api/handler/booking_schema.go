package handler

import "github.com/dealfourwheel/marketplace-api/internal/core/domain"

type createBookingRequest struct {
	ProductID       string  `json:"product_id"       validate:"required"`
	ProductName     string  `json:"product_name"     validate:"required"`
	Price           float64 `json:"price"            validate:"required,gt=0"`
	BuyerName       string  `json:"buyer_name"       validate:"required"`
	Phone           string  `json:"phone"`
	MeetingLocation string  `json:"meeting_location"`
}

type createBookingResponse struct {
	Booking *domain.Booking `json:"booking,omitempty"`
	// Duplicate is true when an Idempotency-Key replay was detected and no
	// new booking was written.
	Duplicate bool `json:"duplicate,omitempty"`
}
