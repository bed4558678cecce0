// Package api contains the BrewClub backend client. The Client interface is
// the seam every service depends on; the HTTP implementation lives in
// httpclient.go and the services are tested against fakes.
package api

import (
	"context"

	"github.com/dpetrovs/brewclub/internal/client/models"
)

// LoginResponse is the raw credential-exchange response. Either token may be
// missing on a malformed success; the auth gateway decides what that means.
type LoginResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// SignupResponse carries the access token issued for a fresh account.
// Signup responses include no refresh token.
type SignupResponse struct {
	Access string `json:"access"`
}

// SignupRequest is the signup request body. Field names follow the backend's
// JSON contract.
type SignupRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Client is the backend API surface used by the client services.
type Client interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error)
	CurrentUser(ctx context.Context, accessToken string) (*models.UserProfile, error)
	UpdateProfilePicture(ctx context.Context, accessToken, imageURL string) error
}
