package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "forbidden access"},
		{"invalid token", domain.ErrTokenInvalid, http.StatusForbidden, "forbidden access"},
		{"expired token", domain.ErrTokenExpired, http.StatusForbidden, "forbidden access"},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest, "invalid identifier"},
		{"echo error", echo.NewHTTPError(http.StatusNotFound, "not found"), http.StatusNotFound, "not found"},
		{"unexpected", errors.New("mongo: connection refused"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.wantBody) {
				t.Fatalf("expected body containing %q, got %s", tc.wantBody, rec.Body.String())
			}
		})
	}
}
