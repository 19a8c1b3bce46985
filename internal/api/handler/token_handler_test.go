package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
)

type stubTokenService struct {
	known map[string]bool
}

func (s *stubTokenService) Issue(_ context.Context, email string) (string, error) {
	if !s.known[email] {
		return "", domain.ErrForbidden
	}
	return "signed-token-for-" + email, nil
}

func (s *stubTokenService) Verify(token string) (string, error) {
	return strings.TrimPrefix(token, "signed-token-for-"), nil
}

func TestTokenHandler_Issue(t *testing.T) {
	e := echo.New()
	h := NewTokenHandler(&stubTokenService{known: map[string]bool{"a@b.com": true}})

	c, rec := newTestContext(e, http.MethodGet, "/jwt?email=a@b.com", "")
	if err := h.Issue(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"accessToken":"signed-token-for-a@b.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestTokenHandler_Issue_UnknownIdentity(t *testing.T) {
	e := echo.New()
	h := NewTokenHandler(&stubTokenService{})

	c, rec := newTestContext(e, http.MethodGet, "/jwt?email=ghost@b.com", "")
	if err := h.Issue(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"accessToken":""}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
