package services

import (
	"context"
	"fmt"

	"github.com/dpetrovs/brewclub/internal/client/api"
	"github.com/dpetrovs/brewclub/internal/client/credentials"
	"github.com/dpetrovs/brewclub/internal/client/models"
	"github.com/dpetrovs/brewclub/internal/logging"
)

// DefaultAvatarImage is the bundled placeholder shown when no profile
// picture is available or the avatar fetch fails.
const DefaultAvatarImage = "assets/profile.png"

// ProfileService reads the authenticated user's profile for display. One
// fetch capability serves two surfaces with different failure policies: the
// full profile alerts and redirects, the compact avatar silently falls back
// to the placeholder.
type ProfileService struct {
	client api.Client
	store  credentials.Store
	log    logging.Logger
}

func NewProfileService(client api.Client, store credentials.Store, log logging.Logger) *ProfileService {
	return &ProfileService{client: client, store: store, log: log}
}

// FullProfile fetches the profile for the full-screen surface. A missing
// stored token is ErrNotAuthenticated, which the surface turns into a
// redirect; network failures are returned for the surface to alert on.
func (s *ProfileService) FullProfile(ctx context.Context) (*models.UserProfile, error) {
	pair, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	if pair == nil {
		return nil, ErrNotAuthenticated
	}

	profile, err := s.client.CurrentUser(ctx, pair.AccessToken)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Avatar returns the image reference for the compact avatar surface. Every
// failure degrades to the placeholder, since the avatar renders in contexts
// where neither an alert nor a redirect is acceptable.
func (s *ProfileService) Avatar(ctx context.Context) string {
	pair, err := s.store.Load(ctx)
	if err != nil || pair == nil {
		return DefaultAvatarImage
	}

	profile, err := s.client.CurrentUser(ctx, pair.AccessToken)
	if err != nil {
		s.log.Debug(ctx, "avatar fetch failed, using placeholder", "error", err)
		return DefaultAvatarImage
	}
	if profile.ProfileImageURL == "" {
		return DefaultAvatarImage
	}
	return profile.ProfileImageURL
}

// Logout clears the stored token pair. No network call is made; server-side
// token invalidation is out of scope.
func (s *ProfileService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}
