package ports

import (
	"context"

	"github.com/vidly/rental-api/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	FindAll(ctx context.Context) ([]*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	Insert(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, id string, c *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id string) (*domain.Customer, error)
}
