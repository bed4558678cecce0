// Package services contains the application services of the BrewClub client:
// the auth gateway, the session validator, the profile presenter, and the
// profile-picture upload pipeline. Each service takes its collaborators as
// interfaces so tests can run against fakes.
package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/dpetrovs/brewclub/internal/client/api"
	"github.com/dpetrovs/brewclub/internal/client/credentials"
	"github.com/dpetrovs/brewclub/internal/client/models"
	"github.com/dpetrovs/brewclub/internal/logging"
)

const (
	minUsernameLen = 5
	minPasswordLen = 8
)

// emailRe is a syntactic sanity check only, not RFC validation: some
// non-space local part, an @, and a dotted domain.
var emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

// SignupInput carries the user-supplied signup fields. PasswordConfirmation
// is validated locally and never sent to the backend.
type SignupInput struct {
	Username             string
	FirstName            string
	LastName             string
	Email                string
	Password             string
	PasswordConfirmation string
}

// AuthService performs login and signup exchanges against the backend,
// validating the input locally before any network call and persisting the
// issued tokens before reporting success.
type AuthService struct {
	client api.Client
	store  credentials.Store
	log    logging.Logger
}

func NewAuthService(client api.Client, store credentials.Store, log logging.Logger) *AuthService {
	return &AuthService{client: client, store: store, log: log}
}

// Login exchanges the credentials for a token pair. Validation failures are
// returned as FieldErrors with zero network calls. A success response that
// lacks either token yields ErrTokenMissing and writes nothing. On success
// both tokens are durable before Login returns.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	fieldErrs := ValidateLogin(username, password)
	if len(fieldErrs) > 0 {
		return fieldErrs
	}

	resp, err := s.client.Login(ctx, username, password)
	if err != nil {
		s.log.Warn(ctx, "login failed", "username", username, "error", err)
		return err
	}

	// Defensive check: an HTTP success with a missing token is still a failure.
	if resp.Access == "" || resp.Refresh == "" {
		s.log.Warn(ctx, "login response misses a token", "username", username)
		return ErrTokenMissing
	}

	pair := models.TokenPair{AccessToken: resp.Access, RefreshToken: resp.Refresh}
	if err := s.store.Save(ctx, pair); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	s.log.Info(ctx, "logged in", "username", username)
	return nil
}

// Signup creates an account. All field checks run independently so the user
// sees every violation at once; any violation means zero network calls.
// Unlike login, the backend issues no refresh token on signup; the access
// token alone is stored.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) error {
	fieldErrs := ValidateSignup(input)
	if len(fieldErrs) > 0 {
		return fieldErrs
	}

	resp, err := s.client.Signup(ctx, api.SignupRequest{
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	})
	if err != nil {
		s.log.Warn(ctx, "signup failed", "username", input.Username, "error", err)
		return err
	}

	if resp.Access == "" {
		s.log.Warn(ctx, "signup response misses the access token", "username", input.Username)
		return ErrTokenMissing
	}

	if err := s.store.Save(ctx, models.TokenPair{AccessToken: resp.Access}); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	s.log.Info(ctx, "account created", "username", input.Username)
	return nil
}

// ValidateLogin checks the login fields locally.
func ValidateLogin(username, password string) FieldErrors {
	fieldErrs := FieldErrors{}
	if username == "" {
		fieldErrs["username"] = "Username not provided"
	}
	if password == "" {
		fieldErrs["password"] = "Password not provided"
	}
	return fieldErrs
}

// ValidateSignup checks all six signup fields independently, never stopping
// at the first violation.
func ValidateSignup(input SignupInput) FieldErrors {
	fieldErrs := FieldErrors{}
	if len(input.Username) < minUsernameLen {
		fieldErrs["username"] = "Username must be >= 5 characters"
	}
	if input.FirstName == "" {
		fieldErrs["first_name"] = "First Name was not provided"
	}
	if input.LastName == "" {
		fieldErrs["last_name"] = "Last Name was not provided"
	}
	if input.Email == "" || !emailRe.MatchString(input.Email) {
		fieldErrs["email"] = "Invalid email address"
	}
	if len(input.Password) < minPasswordLen {
		fieldErrs["password"] = "Password is too short"
	}
	if input.Password != input.PasswordConfirmation {
		fieldErrs["password_confirmation"] = "Passwords don't match"
	}
	return fieldErrs
}
