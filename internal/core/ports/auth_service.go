package ports

import (
	"context"

	"github.com/vidly/rental-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a user with a hashed password and returns it together
	// with a freshly signed token.
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	// Login verifies credentials and returns a signed token. Failures are
	// reported uniformly as domain.ErrInvalidCredentials so callers cannot
	// tell whether the email or the password was wrong.
	Login(ctx context.Context, email, password string) (string, error)
	// CurrentUser resolves the user behind an authenticated request.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
