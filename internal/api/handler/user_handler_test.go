package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
	"github.com/dealfourwheel/marketplace-api/internal/core/ports"
)

type stubUserService struct {
	users         map[string]*domain.User
	createCalls   int
	verifyCalls   int
	deleteCalls   int
	verifiedID    string
	getByEmailErr error
}

func newStubUserService(users ...*domain.User) *stubUserService {
	s := &stubUserService{users: make(map[string]*domain.User)}
	for _, u := range users {
		s.users[u.Email] = u
	}
	return s
}

func (s *stubUserService) Create(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
	s.createCalls++
	u := &domain.User{ID: "u1", Name: input.Name, Email: input.Email, Role: input.Role}
	s.users[u.Email] = u
	return u, nil
}

func (s *stubUserService) List(_ context.Context) ([]*domain.User, error) {
	out := []*domain.User{}
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUserService) ListByRole(_ context.Context, role domain.Role) ([]*domain.User, error) {
	out := []*domain.User{}
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *stubUserService) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if s.getByEmailErr != nil {
		return nil, s.getByEmailErr
	}
	return s.users[email], nil
}

func (s *stubUserService) RoleOf(_ context.Context, email string) (domain.Role, error) {
	if u, ok := s.users[email]; ok {
		return u.Role, nil
	}
	return domain.RoleUnset, nil
}

func (s *stubUserService) IsBuyer(ctx context.Context, email string) (bool, error) {
	role, err := s.RoleOf(ctx, email)
	return role == domain.RoleBuyer, err
}

func (s *stubUserService) IsSeller(ctx context.Context, email string) (bool, error) {
	role, err := s.RoleOf(ctx, email)
	return role == domain.RoleSeller, err
}

func (s *stubUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := s.RoleOf(ctx, email)
	return role == domain.RoleAdmin, err
}

func (s *stubUserService) Verify(_ context.Context, id string) error {
	s.verifyCalls++
	s.verifiedID = id
	return nil
}

func (s *stubUserService) Delete(_ context.Context, id string) error {
	s.deleteCalls++
	return nil
}

func newTestContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Create_RejectsInvalidBody(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := newStubUserService()
	h := NewUserHandler(svc)

	c, rec := newTestContext(e, http.MethodPost, "/users", `{"name":"Alice"}`)
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.createCalls != 0 {
		t.Fatalf("service must not run on invalid body")
	}
}

func TestUserHandler_Create(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewUserHandler(newStubUserService())

	c, rec := newTestContext(e, http.MethodPost, "/users", `{"name":"Alice","email":"a@b.com","role":"seller"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"email":"a@b.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_Create_RejectsUnknownRole(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := newStubUserService()
	h := NewUserHandler(svc)

	c, rec := newTestContext(e, http.MethodPost, "/users", `{"name":"Eve","email":"e@b.com","role":"superuser"}`)
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.createCalls != 0 {
		t.Fatalf("service must not run on invalid role")
	}
}

func TestUserHandler_ClassifyBuyer_UnknownEmail(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(newStubUserService())

	c, rec := newTestContext(e, http.MethodGet, "/", "")
	c.SetParamNames("email")
	c.SetParamValues("unknown@x.com")

	if err := h.ClassifyBuyer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown email must not be an error, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"isBuyer":false}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_ClassifySeller_RoundTrip(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(newStubUserService(
		&domain.User{ID: "1", Email: "a@b.com", Role: domain.RoleSeller},
	))

	c, rec := newTestContext(e, http.MethodGet, "/", "")
	c.SetParamNames("email")
	c.SetParamValues("a@b.com")

	if err := h.ClassifySeller(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"isSeller":true}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_Verify_TargetsPathID(t *testing.T) {
	e := echo.New()
	svc := newStubUserService()
	h := NewUserHandler(svc)

	c, rec := newTestContext(e, http.MethodPut, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("64b1f0c2a9e77d3f5c8d0001")

	if err := h.Verify(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.verifiedID != "64b1f0c2a9e77d3f5c8d0001" {
		t.Fatalf("verified wrong target: %q", svc.verifiedID)
	}
}
