package handler

import "github.com/vidly/rental-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. It mirrors the one rendered by the central error handler.
type errorResponse struct {
	Error string `json:"error"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=5,max=255"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=5,max=50"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=5,max=255"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
}
