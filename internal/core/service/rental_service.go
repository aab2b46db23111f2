package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vidly/rental-api/internal/api/metrics"
	"github.com/vidly/rental-api/internal/core/domain"
	"github.com/vidly/rental-api/internal/core/ports"
)

type RentalService struct {
	rentals   ports.RentalRepository
	movies    ports.MovieRepository
	customers ports.CustomerRepository
	log       zerolog.Logger

	// now is swappable in tests to pin fee calculations.
	now func() time.Time
}

func NewRentalService(rentals ports.RentalRepository, movies ports.MovieRepository, customers ports.CustomerRepository, log zerolog.Logger) *RentalService {
	return &RentalService{
		rentals:   rentals,
		movies:    movies,
		customers: customers,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *RentalService) List(ctx context.Context) ([]*domain.Rental, error) {
	return s.rentals.FindAll(ctx)
}

func (s *RentalService) Get(ctx context.Context, id string) (*domain.Rental, error) {
	return s.rentals.FindByID(ctx, id)
}

// Checkout creates an open rental with customer and movie snapshots and takes
// one copy out of stock.
func (s *RentalService) Checkout(ctx context.Context, customerID, movieID string) (*domain.Rental, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if movie.NumberInStock <= 0 {
		return nil, domain.ErrMovieNotInStock
	}

	rental := &domain.Rental{
		Customer: domain.CustomerSnapshot{
			ID:     customer.ID,
			Name:   customer.Name,
			Phone:  customer.Phone,
			IsGold: customer.IsGold,
		},
		Movie: domain.MovieSnapshot{
			ID:              movie.ID,
			Title:           movie.Title,
			DailyRentalRate: movie.DailyRentalRate,
		},
		DateOut: s.now(),
	}

	created, err := s.rentals.Insert(ctx, rental)
	if err != nil {
		return nil, fmt.Errorf("insert rental: %w", err)
	}

	if err := s.movies.AdjustStock(ctx, movie.ID, -1); err != nil {
		// The rental exists but the copy was not taken out of stock. There is
		// no transaction spanning the two writes; surface it loudly.
		s.log.Error().Err(err).Str("rental_id", created.ID).Str("movie_id", movie.ID).
			Msg("rental created but stock decrement failed")
		return nil, fmt.Errorf("adjust stock: %w", err)
	}

	metrics.RentalsCreatedTotal.Inc()
	s.log.Info().Str("rental_id", created.ID).Str("customer_id", customer.ID).
		Str("movie_id", movie.ID).Msg("rental created")
	return created, nil
}

// ProcessReturn closes the newest rental for the (customer, movie) pair,
// computes the fee, and puts the copy back in stock. The lookup ignores the
// returned state: a pair whose rental is already closed fails the terminal
// check in Rental.Return, not the lookup, so the caller can tell "never
// rented" apart from "already processed". The rental update and the stock
// increment are two separate writes with no transaction between them; a
// restock failure after the rental is closed is logged and returned.
func (s *RentalService) ProcessReturn(ctx context.Context, customerID, movieID string) (*domain.Rental, error) {
	rental, err := s.rentals.FindByCustomerAndMovie(ctx, customerID, movieID)
	if err != nil {
		return nil, err
	}

	if err := rental.Return(s.now()); err != nil {
		return nil, err
	}

	if err := s.rentals.Update(ctx, rental); err != nil {
		return nil, fmt.Errorf("close rental: %w", err)
	}

	if err := s.movies.AdjustStock(ctx, rental.Movie.ID, 1); err != nil {
		s.log.Error().Err(err).Str("rental_id", rental.ID).Str("movie_id", rental.Movie.ID).
			Msg("rental closed but restock failed")
		return nil, fmt.Errorf("restock movie: %w", err)
	}

	metrics.ReturnsProcessedTotal.Inc()
	metrics.RentalFeeCollected.Observe(rental.RentalFee)
	s.log.Info().Str("rental_id", rental.ID).Float64("fee", rental.RentalFee).Msg("return processed")
	return rental, nil
}
