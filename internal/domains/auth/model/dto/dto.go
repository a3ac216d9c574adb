package dto

import (
	"github.com/alexfurtado22/djangobnb/infras/rentalapi"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) ToBackendRequest() rentalapi.LoginRequest {
	return rentalapi.LoginRequest{
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (r *LoginResponse) FromTokenPair(pair rentalapi.TokenPair) {
	r.AccessToken = pair.Access
	r.RefreshToken = pair.Refresh
}

// SessionStatus is the identity answer the booking widget consumes. IsLoading
// stays false here: the token introspection fast path always resolves
// immediately, so callers never have to render a pending state.
type SessionStatus struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	IsLoading       bool   `json:"isLoading"`
	UserID          string `json:"userId,omitempty"`
}

// SessionWithLogin decorates an anonymous session with the log-in URL the
// front end should send the guest to, preserving where they meant to go.
type SessionWithLogin struct {
	SessionStatus
	LoginRedirect string `json:"loginRedirect"`
}

type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (r *UserResponse) FromBackendUser(user rentalapi.User) {
	r.ID = user.ID
	r.Username = user.Username
	r.Email = user.Email
}
