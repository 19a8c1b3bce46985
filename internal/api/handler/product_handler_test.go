package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
	"github.com/dealfourwheel/marketplace-api/internal/core/ports"
)

type stubProductService struct {
	products  []*domain.Product
	lastInput ports.CreateProductInput
}

func (s *stubProductService) Create(_ context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	s.lastInput = input
	p := &domain.Product{ID: "p1", Name: input.Name, Category: input.Category, SellerEmail: input.SellerEmail, Price: input.Price}
	s.products = append(s.products, p)
	return p, nil
}

func (s *stubProductService) List(_ context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	out := []*domain.Product{}
	for _, p := range s.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProductService) ListBySeller(_ context.Context, email string) ([]*domain.Product, error) {
	out := []*domain.Product{}
	for _, p := range s.products {
		if p.SellerEmail == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestProductHandler_Create_SellerFromToken(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := &stubProductService{}
	h := NewProductHandler(svc, newStubUserService(), zerolog.Nop())

	body := `{"name":"Toyota Axio 2017","category":"sedan","price":12500,"seller_email":"spoof@x.com"}`
	c, rec := newTestContext(e, http.MethodPost, "/products", body)
	c.Set("email", "seller@example.com")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastInput.SellerEmail != "seller@example.com" {
		t.Fatalf("seller identity must come from the token, got %q", svc.lastInput.SellerEmail)
	}
}

func TestProductHandler_Create_SellerLookupFailureNotFatal(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := &stubProductService{}
	users := newStubUserService()
	users.getByEmailErr = errors.New("mongo: connection refused")
	h := NewProductHandler(svc, users, zerolog.Nop())

	body := `{"name":"Toyota Axio 2017","category":"sedan","price":12500}`
	c, rec := newTestContext(e, http.MethodPost, "/products", body)
	c.Set("email", "seller@example.com")

	if err := h.Create(c); err != nil {
		t.Fatalf("lookup failure must not fail creation: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastInput.SellerName != "" {
		t.Fatalf("expected empty seller name, got %q", svc.lastInput.SellerName)
	}
}

func TestProductHandler_Create_NoIdentity(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := &stubProductService{}
	h := NewProductHandler(svc, newStubUserService(), zerolog.Nop())

	c, rec := newTestContext(e, http.MethodPost, "/products", `{"name":"X","category":"sedan","price":1}`)
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if len(svc.products) != 0 {
		t.Fatalf("service must not run without identity")
	}
}

func TestProductHandler_List_InvalidLimit(t *testing.T) {
	e := echo.New()
	h := NewProductHandler(&stubProductService{}, newStubUserService(), zerolog.Nop())

	c, rec := newTestContext(e, http.MethodGet, "/products?limit=abc", "")
	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProductHandler_ListByCategory_EmptyIsOK(t *testing.T) {
	e := echo.New()
	h := NewProductHandler(&stubProductService{}, newStubUserService(), zerolog.Nop())

	c, rec := newTestContext(e, http.MethodGet, "/", "")
	c.SetParamNames("category")
	c.SetParamValues("truck")

	if err := h.ListByCategory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}
