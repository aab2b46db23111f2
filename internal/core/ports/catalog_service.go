package ports

import (
	"context"

	"github.com/vidly/rental-api/internal/core/domain"
)

// GenreInput carries the mutable fields of a genre.
type GenreInput struct {
	Name string
}

// CustomerInput carries the mutable fields of a customer.
type CustomerInput struct {
	Name   string
	Phone  string
	IsGold bool
}

// MovieInput carries the mutable fields of a movie. GenreID references the
// genre to snapshot into the movie document.
type MovieInput struct {
	Title           string
	GenreID         string
	NumberInStock   int
	DailyRentalRate float64
}

// GenreService exposes CRUD over the genre collection.
type GenreService interface {
	List(ctx context.Context) ([]*domain.Genre, error)
	Get(ctx context.Context, id string) (*domain.Genre, error)
	Create(ctx context.Context, in GenreInput) (*domain.Genre, error)
	Update(ctx context.Context, id string, in GenreInput) (*domain.Genre, error)
	Delete(ctx context.Context, id string) (*domain.Genre, error)
}

// CustomerService exposes CRUD over the customer collection.
type CustomerService interface {
	List(ctx context.Context) ([]*domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id string, in CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) (*domain.Customer, error)
}

// MovieService exposes CRUD over the movie catalog. Create and Update
// resolve GenreID and embed a genre snapshot into the movie document.
type MovieService interface {
	List(ctx context.Context) ([]*domain.Movie, error)
	Get(ctx context.Context, id string) (*domain.Movie, error)
	Create(ctx context.Context, in MovieInput) (*domain.Movie, error)
	Update(ctx context.Context, id string, in MovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, id string) (*domain.Movie, error)
}
