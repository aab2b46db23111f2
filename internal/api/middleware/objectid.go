package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidateObjectID rejects requests whose :id path parameter is not a
// well-formed object id. A malformed id gets 404, not 400: an id that cannot
// exist addresses no resource.
func ValidateObjectID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := primitive.ObjectIDFromHex(c.Param("id")); err != nil {
				return echo.NewHTTPError(http.StatusNotFound, "invalid id")
			}
			return next(c)
		}
	}
}
