package domain

// Category is seed/reference data; the API never mutates it.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand,omitempty"`
}
