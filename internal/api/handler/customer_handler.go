package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-api/internal/core/ports"
)

type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

type customerRequest struct {
	Name   string `json:"name"    validate:"required,min=5,max=50"`
	Phone  string `json:"phone"   validate:"required,min=5,max=50"`
	IsGold bool   `json:"is_gold"`
}

// List returns all customers ordered by name.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Success      200  {array}  domain.Customer
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Get returns a customer by id.
//
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer id (hex)"
// @Success      200  {object}  domain.Customer
// @Failure      404  {object}  errorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Create persists a new customer.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      customerRequest  true  "Customer fields"
// @Success      200   {object}  domain.Customer
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.Create(c.Request().Context(), ports.CustomerInput{
		Name:   req.Name,
		Phone:  req.Phone,
		IsGold: req.IsGold,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Update replaces the mutable fields of a customer.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      string           true  "Customer id (hex)"
// @Param        body  body      customerRequest  true  "Customer fields"
// @Success      200   {object}  domain.Customer
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.CustomerInput{
		Name:   req.Name,
		Phone:  req.Phone,
		IsGold: req.IsGold,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete removes a customer and returns the removed record.
//
// @Summary      Delete a customer
// @Tags         customers
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Customer id (hex)"
// @Success      200  {object}  domain.Customer
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	customer, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}
