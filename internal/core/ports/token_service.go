package ports

import "context"

// TokenService issues and verifies signed, time-limited identity tokens
// bound to an email claim.
type TokenService interface {
	// Issue produces a signed token for an email that resolves to an
	// existing user. Unknown identities yield domain.ErrForbidden.
	Issue(ctx context.Context, email string) (string, error)
	// Verify returns the email claim of a valid token. It fails with
	// domain.ErrTokenInvalid on a malformed or wrongly signed token and
	// domain.ErrTokenExpired past the expiry window.
	Verify(token string) (string, error)
}
