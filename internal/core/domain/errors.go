package domain

import "errors"

var (
	// ErrForbidden covers any request whose credential is insufficient for
	// the action, including token issuance for unknown identities.
	ErrForbidden = errors.New("forbidden access")

	// ErrTokenInvalid means the token is malformed or its signature does not
	// verify against the service signing key.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired means the token verified but is past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidID means a path parameter is not a valid store identity.
	ErrInvalidID = errors.New("invalid identifier")
)
