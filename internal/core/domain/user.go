package domain

// Role classifies a user for access decisions.
type Role string

const (
	RoleUnset  Role = ""
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// User models an account in the marketplace. Identity is taken from the
// email claim of a bearer token; no credentials are stored.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role,omitempty"`
	Verified bool   `json:"verified"`
	Phone    string `json:"phone,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}
