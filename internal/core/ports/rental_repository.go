package ports

import (
	"context"

	"github.com/vidly/rental-api/internal/core/domain"
)

// RentalRepository defines persistence operations for rentals.
type RentalRepository interface {
	// FindAll returns every rental, newest checkout first.
	FindAll(ctx context.Context) ([]*domain.Rental, error)
	FindByID(ctx context.Context, id string) (*domain.Rental, error)
	Insert(ctx context.Context, r *domain.Rental) (*domain.Rental, error)
	// Update persists the closed state of a rental (date_returned, rental_fee).
	Update(ctx context.Context, r *domain.Rental) error
	// FindByCustomerAndMovie returns the most recent rental for the
	// (customer, movie) pair, open or closed.
	FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*domain.Rental, error)
}
