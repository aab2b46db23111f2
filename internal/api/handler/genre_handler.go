package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-api/internal/core/ports"
)

type GenreHandler struct {
	service ports.GenreService
}

func NewGenreHandler(service ports.GenreService) *GenreHandler {
	return &GenreHandler{service: service}
}

type genreRequest struct {
	Name string `json:"name" validate:"required,min=5,max=50"`
}

// List returns all genres ordered by name.
//
// @Summary      List genres
// @Tags         genres
// @Produce      json
// @Success      200  {array}  domain.Genre
// @Router       /api/genres [get]
func (h *GenreHandler) List(c echo.Context) error {
	genres, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genres)
}

// Get returns a genre by id.
//
// @Summary      Get a genre
// @Tags         genres
// @Produce      json
// @Param        id   path      string  true  "Genre id (hex)"
// @Success      200  {object}  domain.Genre
// @Failure      404  {object}  errorResponse
// @Router       /api/genres/{id} [get]
func (h *GenreHandler) Get(c echo.Context) error {
	genre, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genre)
}

// Create persists a new genre.
//
// @Summary      Create a genre
// @Tags         genres
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      genreRequest  true  "Genre fields"
// @Success      200   {object}  domain.Genre
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/genres [post]
func (h *GenreHandler) Create(c echo.Context) error {
	var req genreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	genre, err := h.service.Create(c.Request().Context(), ports.GenreInput{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genre)
}

// Update replaces the mutable fields of a genre.
//
// @Summary      Update a genre
// @Tags         genres
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      string        true  "Genre id (hex)"
// @Param        body  body      genreRequest  true  "Genre fields"
// @Success      200   {object}  domain.Genre
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/genres/{id} [put]
func (h *GenreHandler) Update(c echo.Context) error {
	var req genreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	genre, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.GenreInput{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genre)
}

// Delete removes a genre and returns the removed record.
//
// @Summary      Delete a genre
// @Tags         genres
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Genre id (hex)"
// @Success      200  {object}  domain.Genre
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/genres/{id} [delete]
func (h *GenreHandler) Delete(c echo.Context) error {
	genre, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genre)
}
