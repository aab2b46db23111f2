package domain

import "errors"

var (
	ErrGenreNotFound    = errors.New("genre not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrRentalNotFound   = errors.New("rental not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrDuplicateGenre = errors.New("genre already exists")
	ErrDuplicateTitle = errors.New("movie title already exists")
	ErrUserExists     = errors.New("user already exists")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")

	ErrMovieNotInStock       = errors.New("movie not in stock")
	ErrRentalAlreadyReturned = errors.New("rental already processed")

	// ErrInvalidID marks a path parameter that is not a well-formed object id.
	// It maps to 404: an id that cannot exist addresses nothing.
	ErrInvalidID = errors.New("invalid id")
)
