package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
)

type stubResolver struct {
	roles      map[string]domain.Role
	lastLookup string
}

func (r *stubResolver) RoleOf(_ context.Context, email string) (domain.Role, error) {
	r.lastLookup = email
	return r.roles[email], nil
}

func TestRequireRole_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "admin@example.com")

	called := false
	mw := RequireRole(&stubResolver{roles: map[string]domain.Role{"admin@example.com": domain.RoleAdmin}}, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_ForbidsNonAdmin(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "buyer@example.com")

	mw := RequireRole(&stubResolver{roles: map[string]domain.Role{"buyer@example.com": domain.RoleBuyer}}, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_MissingIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireRole(&stubResolver{}, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// The role is resolved for the token identity, never for path parameters:
// the target id of an admin-guarded mutation must not influence the check.
func TestRequireRole_ResolvesTokenIdentityNotTarget(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/user/64b1f0c2a9e77d3f5c8d0001", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("64b1f0c2a9e77d3f5c8d0001")
	c.Set("email", "admin@example.com")

	resolver := &stubResolver{roles: map[string]domain.Role{"admin@example.com": domain.RoleAdmin}}
	mw := RequireRole(resolver, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resolver.lastLookup != "admin@example.com" {
		t.Fatalf("role resolved for %q, want the token identity", resolver.lastLookup)
	}
}
