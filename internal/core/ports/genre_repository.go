package ports

import (
	"context"

	"github.com/vidly/rental-api/internal/core/domain"
)

// GenreRepository defines persistence operations for genres.
type GenreRepository interface {
	// FindAll returns every genre ordered by name.
	FindAll(ctx context.Context) ([]*domain.Genre, error)
	FindByID(ctx context.Context, id string) (*domain.Genre, error)
	Insert(ctx context.Context, g *domain.Genre) (*domain.Genre, error)
	// Update replaces the mutable fields of the genre with the given id and
	// returns the updated document.
	Update(ctx context.Context, id string, g *domain.Genre) (*domain.Genre, error)
	// Delete removes the genre and returns the removed document.
	Delete(ctx context.Context, id string) (*domain.Genre, error)
}
