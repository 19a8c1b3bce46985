package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dealfourwheel/marketplace-api/internal/api/metrics"
	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
)

// TokenVerifier is the interface the gate uses to validate bearer tokens.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth validates the bearer token and injects the decoded email into the
// request context. An absent credential is 401; a credential that is present
// but malformed, wrongly signed, or expired is 403. The gate establishes
// identity only — it knows nothing about roles.
func Auth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("bad_header").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			email, err := tokens.Verify(parts[1])
			if err != nil {
				reason := "invalid_token"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "expired_token"
				}
				metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			c.Set("email", email)
			return next(c)
		}
	}
}
