package mongo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vidly/rental-api/internal/core/domain"
)

// parseID converts a 24-char hex string into an ObjectID. Anything else is
// domain.ErrInvalidID, which the API maps to 404: an id that cannot exist
// addresses nothing.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}
