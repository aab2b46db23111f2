package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-api/internal/api/middleware"
	"github.com/vidly/rental-api/internal/core/domain"
)

type stubAuthService struct {
	users  map[string]*domain.User // keyed by email
	byID   map[string]*domain.User
	nextID int
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{users: make(map[string]*domain.User), byID: make(map[string]*domain.User)}
}

func (s *stubAuthService) Register(_ context.Context, name, email, password string) (*domain.User, string, error) {
	if _, exists := s.users[email]; exists {
		return nil, "", domain.ErrUserExists
	}
	s.nextID++
	user := &domain.User{ID: "user_1", Name: name, Email: email, PasswordHash: "hashed:" + password}
	s.users[email] = user
	s.byID[user.ID] = user
	return user, "signed-token", nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, error) {
	user, ok := s.users[email]
	if !ok || user.PasswordHash != "hashed:"+password {
		return "", domain.ErrInvalidCredentials
	}
	return "signed-token", nil
}

func (s *stubAuthService) CurrentUser(_ context.Context, userID string) (*domain.User, error) {
	if u, ok := s.byID[userID]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := newStubAuthService()
	if _, _, err := svc.Register(context.Background(), "alice smith", "alice@example.com", "pass123"); err != nil {
		t.Fatalf("seed register: %v", err)
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth", `{"email":"alice@example.com","password":"pass123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h := NewAuthHandler(newStubAuthService())

	c, _ := newTestContext(t, http.MethodPost, "/api/auth", `{"email":"ghost@example.com","password":"pass123"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(newStubAuthService())

	cases := []string{
		`{"password":"pass123"}`,
		`{"email":"not-an-email","password":"pass123"}`,
		`{"email":"alice@example.com","password":"1234"}`,
	}
	for _, body := range cases {
		c, _ := newTestContext(t, http.MethodPost, "/api/auth", body)
		err := h.Login(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h := NewAuthHandler(newStubAuthService())

	c, rec := newTestContext(t, http.MethodPost, "/api/users",
		`{"name":"alice smith","email":"alice@example.com","password":"pass123"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got := rec.Header().Get(middleware.TokenHeader); got != "signed-token" {
		t.Fatalf("expected token header, got %q", got)
	}
	if strings.Contains(rec.Body.String(), "hashed:") {
		t.Fatalf("response leaks password hash: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	svc := newStubAuthService()
	_, _, _ = svc.Register(context.Background(), "alice smith", "alice@example.com", "pass123")
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/api/users",
		`{"name":"alice smith","email":"alice@example.com","password":"pass123"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	svc := newStubAuthService()
	_, _, _ = svc.Register(context.Background(), "alice smith", "alice@example.com", "pass123")
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/users/me", "")
	c.Set("user_id", "user_1")
	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", resp)
	}
}

func TestAuthHandler_Me_NoClaims(t *testing.T) {
	h := NewAuthHandler(newStubAuthService())

	c, _ := newTestContext(t, http.MethodGet, "/api/users/me", "")
	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
