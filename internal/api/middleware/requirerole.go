package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dealfourwheel/marketplace-api/internal/api/metrics"
	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
)

// RoleResolver looks up a user's current role by email. Resolution is a
// fresh store lookup per request.
type RoleResolver interface {
	RoleOf(ctx context.Context, email string) (domain.Role, error)
}

// RequireRole authorizes the authenticated identity against a required role.
// It must run after Auth: the role is resolved for the decoded token email,
// never for any client-supplied path or body parameter.
func RequireRole(resolver RoleResolver, required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			role, err := resolver.RoleOf(c.Request().Context(), email)
			if err != nil {
				return err
			}
			if role != required {
				metrics.AuthFailuresTotal.WithLabelValues("insufficient_role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			return next(c)
		}
	}
}
