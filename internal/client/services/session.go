package services

import (
	"context"

	"github.com/dpetrovs/brewclub/internal/client/api"
	"github.com/dpetrovs/brewclub/internal/client/credentials"
	"github.com/dpetrovs/brewclub/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// Status is the session state a surface renders from. StatusChecking is what
// a surface shows until Check returns; Check itself only ever reports one of
// the two settled states.
type Status int

const (
	StatusChecking Status = iota
	StatusAuthenticated
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "checking"
	}
}

// SessionService decides on start whether the locally stored token still
// authenticates against the backend.
type SessionService struct {
	client api.Client
	store  credentials.Store
	log    logging.Logger
}

func NewSessionService(client api.Client, store credentials.Store, log logging.Logger) *SessionService {
	return &SessionService{client: client, store: store, log: log}
}

// Check reports the settled session status. With no stored token it answers
// immediately, without touching the network. With one, it issues a read-only
// current-user request; anything but a 2xx, including an unreachable
// backend, downgrades to unauthenticated. Deliberately no retry and no
// distinction between an invalid token and a network blip: both fail open to
// re-login.
func (s *SessionService) Check(ctx context.Context) Status {
	pair, err := s.store.Load(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read stored credentials", "error", err)
		return StatusUnauthenticated
	}
	if pair == nil {
		return StatusUnauthenticated
	}

	if _, err := s.client.CurrentUser(ctx, pair.AccessToken); err != nil {
		s.log.Info(ctx, "stored token did not validate", "error", err)
		return StatusUnauthenticated
	}

	return StatusAuthenticated
}

// Subject returns a display name for the stored session by decoding the
// access token without verifying it. The token is opaque by contract, so any
// decode failure degrades to "" rather than an error. Display only; nothing
// is trusted from these claims.
func (s *SessionService) Subject(ctx context.Context) string {
	pair, err := s.store.Load(ctx)
	if err != nil || pair == nil {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(pair.AccessToken, claims); err != nil {
		return ""
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub
	}
	if username, ok := claims["username"].(string); ok {
		return username
	}
	return ""
}
