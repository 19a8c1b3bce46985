package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createUserRequest struct {
	Name     string `json:"name"      validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Role     string `json:"role"      validate:"omitempty,oneof=buyer seller admin"`
	Phone    string `json:"phone"`
	PhotoURL string `json:"photo_url"`
}

// Classification responses. Key names are part of the public contract.

type isBuyerResponse struct {
	IsBuyer bool `json:"isBuyer"`
}

type isSellerResponse struct {
	IsSeller bool `json:"isSeller"`
}

type isAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// acknowledgedResponse reports the outcome of a mutation with no body.
type acknowledgedResponse struct {
	Acknowledged bool `json:"acknowledged"`
}
