package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
	"github.com/dealfourwheel/marketplace-api/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// TokenService issues and verifies HS256-signed identity tokens carrying an
// email claim. It is stateless beyond the signing secret.
type TokenService struct {
	users    ports.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewTokenService(users ports.UserRepository, secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &TokenService{users: users, secret: []byte(secret), tokenTTL: tokenTTL}
}

// Issue signs a token for email. Tokens are never issued for identities
// without a user record.
func (s *TokenService) Issue(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrForbidden
	}

	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates token, returning its email claim.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return "", domain.ErrTokenInvalid
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", domain.ErrTokenInvalid
	}
	return email, nil
}
