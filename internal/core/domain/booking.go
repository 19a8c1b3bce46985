package domain

import "time"

// Booking is a reservation/offer placed on a product.
type Booking struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name"`
	Price           float64   `json:"price"`
	BuyerName       string    `json:"buyer_name"`
	BuyerEmail      string    `json:"buyer_email"`
	Phone           string    `json:"phone,omitempty"`
	MeetingLocation string    `json:"meeting_location,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
