package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dpetrovs/brewclub/internal/client/services"
)

// Profile renders the full profile surface: a missing token redirects to the
// unauthenticated command set, a fetch failure alerts.
func (a *App) Profile(ctx context.Context) {
	profile, err := a.profile.FullProfile(ctx)
	if err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			fmt.Fprintln(a.out, "Error: User not authenticated.")
			a.status = services.StatusUnauthenticated
			return
		}
		fmt.Fprintln(a.out, "Error: Failed to load profile data.")
		return
	}

	picture := profile.ProfileImageURL
	if picture == "" {
		picture = services.DefaultAvatarImage
	}
	a.upload.SetDisplayedImage(picture)

	fmt.Fprintln(a.out, profile.FullName())
	fmt.Fprintln(a.out, "@"+profile.Username)
	fmt.Fprintln(a.out, "Picture:", picture)
}

// Avatar renders the compact surface: every failure silently falls back to
// the placeholder, with no alert and no redirect.
func (a *App) Avatar(ctx context.Context) {
	fmt.Fprintln(a.out, "Avatar:", a.profile.Avatar(ctx))
}

// SetProfilePicture runs the upload pipeline once. Cancel and picker errors
// stay silent; upload and persist failures alert; a vanished token redirects.
func (a *App) SetProfilePicture(ctx context.Context) {
	result, err := a.upload.Run(ctx)
	if err != nil {
		if errors.Is(err, services.ErrUploadInFlight) {
			fmt.Fprintln(a.out, "Error: An upload is already in progress.")
		}
		return
	}

	if result.Message != "" {
		fmt.Fprintln(a.out, "Error:", result.Message)
	}
	if result.RedirectToLogin {
		a.status = services.StatusUnauthenticated
		return
	}
	if result.State == services.StateSettledSuccess {
		fmt.Fprintln(a.out, "Picture:", result.DisplayedImage)
	}
}

// Logout clears the stored tokens and returns to the unauthenticated command
// set. No backend call is made.
func (a *App) Logout(ctx context.Context) {
	if err := a.profile.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return
	}
	a.status = services.StatusUnauthenticated
}
