package ports

import (
	"context"

	"github.com/vidly/rental-api/internal/core/domain"
)

// RentalService exposes the rental lifecycle: checkout, lookup, and the
// return workflow that closes a rental and restocks the movie.
type RentalService interface {
	List(ctx context.Context) ([]*domain.Rental, error)
	Get(ctx context.Context, id string) (*domain.Rental, error)
	// Checkout creates an open rental for (customerID, movieID), embedding
	// customer and movie snapshots, and decrements the movie's stock.
	Checkout(ctx context.Context, customerID, movieID string) (*domain.Rental, error)
	// ProcessReturn closes the newest rental for the pair, computes the fee,
	// and increments the movie's stock. A rental that is already closed is
	// rejected with ErrRentalAlreadyReturned.
	ProcessReturn(ctx context.Context, customerID, movieID string) (*domain.Rental, error)
}
