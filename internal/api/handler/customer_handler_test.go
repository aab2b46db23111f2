package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-api/internal/core/domain"
	"github.com/vidly/rental-api/internal/core/ports"
)

type stubCustomerService struct {
	customers map[string]*domain.Customer
	nextID    int
}

func newStubCustomerService() *stubCustomerService {
	return &stubCustomerService{customers: make(map[string]*domain.Customer)}
}

func (s *stubCustomerService) List(_ context.Context) ([]*domain.Customer, error) {
	out := []*domain.Customer{}
	for _, c := range s.customers {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubCustomerService) Get(_ context.Context, id string) (*domain.Customer, error) {
	if c, ok := s.customers[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (s *stubCustomerService) Create(_ context.Context, in ports.CustomerInput) (*domain.Customer, error) {
	s.nextID++
	c := &domain.Customer{
		ID:     "customer_" + strconv.Itoa(s.nextID),
		Name:   in.Name,
		Phone:  in.Phone,
		IsGold: in.IsGold,
	}
	s.customers[c.ID] = c
	return c, nil
}

func (s *stubCustomerService) Update(_ context.Context, id string, in ports.CustomerInput) (*domain.Customer, error) {
	if _, ok := s.customers[id]; !ok {
		return nil, domain.ErrCustomerNotFound
	}
	c := &domain.Customer{ID: id, Name: in.Name, Phone: in.Phone, IsGold: in.IsGold}
	s.customers[id] = c
	return c, nil
}

func (s *stubCustomerService) Delete(_ context.Context, id string) (*domain.Customer, error) {
	c, ok := s.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	delete(s.customers, id)
	return c, nil
}

func TestCustomerHandler_Create_RoundTrip(t *testing.T) {
	h := NewCustomerHandler(newStubCustomerService())

	c, rec := newTestContext(t, http.MethodPost, "/api/customers",
		`{"name":"customer1","phone":"12345","is_gold":true}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var created domain.Customer
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" || created.Name != "customer1" || created.Phone != "12345" || !created.IsGold {
		t.Fatalf("unexpected created customer: %+v", created)
	}
}

func TestCustomerHandler_Create_IsGoldDefaultsFalse(t *testing.T) {
	h := NewCustomerHandler(newStubCustomerService())

	c, rec := newTestContext(t, http.MethodPost, "/api/customers", `{"name":"customer1","phone":"12345"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	var created domain.Customer
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.IsGold {
		t.Fatalf("is_gold must default to false")
	}
}

func TestCustomerHandler_Create_FieldLengthBounds(t *testing.T) {
	h := NewCustomerHandler(newStubCustomerService())

	// Inclusive bounds on name and phone: 5 and 50 pass, 4 and 51 fail.
	for _, n := range []int{5, 50} {
		v := strings.Repeat("a", n)
		body := fmt.Sprintf(`{"name":%q,"phone":%q}`, v, v)
		c, rec := newTestContext(t, http.MethodPost, "/api/customers", body)
		if err := h.Create(c); err != nil {
			t.Fatalf("len %d: unexpected error: %v", n, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("len %d: expected 200, got %d", n, rec.Code)
		}
	}

	for _, n := range []int{4, 51} {
		v := strings.Repeat("a", n)
		for _, body := range []string{
			fmt.Sprintf(`{"name":%q,"phone":"12345"}`, v),
			fmt.Sprintf(`{"name":"customer1","phone":%q}`, v),
		} {
			c, _ := newTestContext(t, http.MethodPost, "/api/customers", body)
			err := h.Create(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("len %d: expected 400, got %v", n, err)
			}
		}
	}
}

func TestCustomerHandler_Update_NotFound(t *testing.T) {
	h := NewCustomerHandler(newStubCustomerService())

	c, _ := newTestContext(t, http.MethodPut, "/api/customers/x", `{"name":"customer1","phone":"12345"}`)
	c.SetParamNames("id")
	c.SetParamValues("507f1f77bcf86cd799439011")
	if err := h.Update(c); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}
