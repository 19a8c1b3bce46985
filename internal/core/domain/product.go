package domain

import "time"

// Product is a vehicle listing. SellerEmail references User.Email by value;
// the store does not enforce it.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	SellerEmail   string    `json:"seller_email"`
	SellerName    string    `json:"seller_name,omitempty"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"original_price,omitempty"`
	YearOfUse     int       `json:"year_of_use,omitempty"`
	Location      string    `json:"location,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	PostedAt      time.Time `json:"posted_at"`
}
