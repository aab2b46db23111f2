package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-api/internal/core/ports"
)

type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

type movieRequest struct {
	Title           string  `json:"title"             validate:"required,min=5,max=255"`
	GenreID         string  `json:"genre_id"          validate:"required,len=24,hexadecimal"`
	NumberInStock   int     `json:"number_in_stock"   validate:"gte=0,lte=255"`
	DailyRentalRate float64 `json:"daily_rental_rate" validate:"gte=0,lte=255"`
}

// List returns all movies ordered by title.
//
// @Summary      List movies
// @Tags         movies
// @Produce      json
// @Success      200  {array}  domain.Movie
// @Router       /api/movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

// Get returns a movie by id.
//
// @Summary      Get a movie
// @Tags         movies
// @Produce      json
// @Param        id   path      string  true  "Movie id (hex)"
// @Success      200  {object}  domain.Movie
// @Failure      404  {object}  errorResponse
// @Router       /api/movies/{id} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	movie, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// Create persists a new movie, embedding a snapshot of the referenced genre.
//
// @Summary      Create a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      movieRequest  true  "Movie fields"
// @Success      200   {object}  domain.Movie
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/movies [post]
func (h *MovieHandler) Create(c echo.Context) error {
	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	movie, err := h.service.Create(c.Request().Context(), ports.MovieInput{
		Title:           req.Title,
		GenreID:         req.GenreID,
		NumberInStock:   req.NumberInStock,
		DailyRentalRate: req.DailyRentalRate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// Update replaces the mutable fields of a movie, re-resolving the genre.
//
// @Summary      Update a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      string        true  "Movie id (hex)"
// @Param        body  body      movieRequest  true  "Movie fields"
// @Success      200   {object}  domain.Movie
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/movies/{id} [put]
func (h *MovieHandler) Update(c echo.Context) error {
	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	movie, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.MovieInput{
		Title:           req.Title,
		GenreID:         req.GenreID,
		NumberInStock:   req.NumberInStock,
		DailyRentalRate: req.DailyRentalRate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// Delete removes a movie and returns the removed record.
//
// @Summary      Delete a movie
// @Tags         movies
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Movie id (hex)"
// @Success      200  {object}  domain.Movie
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/movies/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	movie, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}
