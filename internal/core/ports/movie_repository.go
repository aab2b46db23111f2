package ports

import (
	"context"

	"github.com/vidly/rental-api/internal/core/domain"
)

// MovieRepository defines persistence operations for the movie catalog.
type MovieRepository interface {
	FindAll(ctx context.Context) ([]*domain.Movie, error)
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	Insert(ctx context.Context, m *domain.Movie) (*domain.Movie, error)
	Update(ctx context.Context, id string, m *domain.Movie) (*domain.Movie, error)
	Delete(ctx context.Context, id string) (*domain.Movie, error)
	// AdjustStock atomically adds delta to number_in_stock. Used by the
	// rental checkout (-1) and the return workflow (+1).
	AdjustStock(ctx context.Context, id string, delta int) error
}
