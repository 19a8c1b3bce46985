package handler

type createProductRequest struct {
	Name          string  `json:"name"           validate:"required"`
	Category      string  `json:"category"       validate:"required"`
	Price         float64 `json:"price"          validate:"required,gt=0"`
	OriginalPrice float64 `json:"original_price" validate:"omitempty,gt=0"`
	YearOfUse     int     `json:"year_of_use"    validate:"omitempty,min=0"`
	Location      string  `json:"location"`
	Phone         string  `json:"phone"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
}
