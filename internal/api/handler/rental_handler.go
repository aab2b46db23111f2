package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-api/internal/core/ports"
)

type RentalHandler struct {
	service ports.RentalService
}

func NewRentalHandler(service ports.RentalService) *RentalHandler {
	return &RentalHandler{service: service}
}

// rentalPairRequest addresses a rental by its (customer, movie) pair. Both
// checkout and return use it.
type rentalPairRequest struct {
	CustomerID string `json:"customer_id" validate:"required,len=24,hexadecimal"`
	MovieID    string `json:"movie_id"    validate:"required,len=24,hexadecimal"`
}

// List returns all rentals, newest checkout first.
//
// @Summary      List rentals
// @Tags         rentals
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}  domain.Rental
// @Failure      401  {object}  errorResponse
// @Router       /api/rentals [get]
func (h *RentalHandler) List(c echo.Context) error {
	rentals, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rentals)
}

// Get returns a rental by id.
//
// @Summary      Get a rental
// @Tags         rentals
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Rental id (hex)"
// @Success      200  {object}  domain.Rental
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/rentals/{id} [get]
func (h *RentalHandler) Get(c echo.Context) error {
	rental, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rental)
}

// Checkout creates an open rental and takes one copy out of stock.
//
// @Summary      Create a rental
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      rentalPairRequest  true  "Customer and movie ids"
// @Success      200   {object}  domain.Rental
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/rentals [post]
func (h *RentalHandler) Checkout(c echo.Context) error {
	var req rentalPairRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rental, err := h.service.Checkout(c.Request().Context(), req.CustomerID, req.MovieID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rental)
}

// Return closes the newest rental for the pair, computes the fee, and
// restocks the movie. A pair whose rental is already closed is rejected as
// already processed. Malformed or missing ids in the body are 400, unlike
// path parameters: here the id shape is a payload validation concern.
//
// @Summary      Process a rental return
// @Tags         returns
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      rentalPairRequest  true  "Customer and movie ids"
// @Success      200   {object}  domain.Rental
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/returns [post]
func (h *RentalHandler) Return(c echo.Context) error {
	var req rentalPairRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rental, err := h.service.ProcessReturn(c.Request().Context(), req.CustomerID, req.MovieID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rental)
}
