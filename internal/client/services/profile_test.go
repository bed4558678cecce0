package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/dpetrovs/brewclub/internal/client/api"
	"github.com/dpetrovs/brewclub/internal/client/models"
	"github.com/dpetrovs/brewclub/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(client *fakeAPI, store *fakeStore) *ProfileService {
	return NewProfileService(client, store, logging.NewNopLogger())
}

func TestFullProfile_NoToken_ErrNotAuthenticated_ZeroCalls(t *testing.T) {
	client := &fakeAPI{}
	svc := newProfile(client, &fakeStore{})

	_, err := svc.FullProfile(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, client.networkCalls())
}

func TestFullProfile_FetchFailure_ReturnsErrorForAlert(t *testing.T) {
	client := &fakeAPI{CurrentUserErr: fmt.Errorf("current user: %w", api.ErrUnavailable)}
	svc := newProfile(client, withPair("A1", "R1"))

	_, err := svc.FullProfile(context.Background())
	require.ErrorIs(t, err, api.ErrUnavailable)
}

func TestFullProfile_Success_ReturnsProfile(t *testing.T) {
	client := &fakeAPI{Profile: &models.UserProfile{
		Username:        "alice",
		FirstName:       "Alice",
		LastName:        "Smith",
		ProfileImageURL: "https://cdn.example.com/alice.jpg",
	}}
	svc := newProfile(client, withPair("A1", "R1"))

	profile, err := svc.FullProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", profile.FullName())
	assert.Equal(t, "https://cdn.example.com/alice.jpg", profile.ProfileImageURL)
}

func TestAvatar_NoToken_PlaceholderWithoutNetworkCall(t *testing.T) {
	client := &fakeAPI{}
	svc := newProfile(client, &fakeStore{})

	assert.Equal(t, DefaultAvatarImage, svc.Avatar(context.Background()))
	assert.Zero(t, client.networkCalls())
}

func TestAvatar_FetchFailure_SilentPlaceholder(t *testing.T) {
	client := &fakeAPI{CurrentUserErr: fmt.Errorf("current user: %w", api.ErrUnavailable)}
	svc := newProfile(client, withPair("A1", "R1"))

	assert.Equal(t, DefaultAvatarImage, svc.Avatar(context.Background()))
}

func TestAvatar_ProfileWithoutPicture_Placeholder(t *testing.T) {
	client := &fakeAPI{Profile: &models.UserProfile{Username: "alice"}}
	svc := newProfile(client, withPair("A1", "R1"))

	assert.Equal(t, DefaultAvatarImage, svc.Avatar(context.Background()))
}

func TestAvatar_ProfileWithPicture_ReturnsURL(t *testing.T) {
	client := &fakeAPI{Profile: &models.UserProfile{ProfileImageURL: "https://cdn.example.com/a.jpg"}}
	svc := newProfile(client, withPair("A1", "R1"))

	assert.Equal(t, "https://cdn.example.com/a.jpg", svc.Avatar(context.Background()))
}

func TestLogout_ClearsStoreWithoutNetworkCall(t *testing.T) {
	client := &fakeAPI{}
	store := withPair("A1", "R1")
	svc := newProfile(client, store)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Nil(t, store.stored())
	assert.Equal(t, 1, store.ClearCalls)
	assert.Zero(t, client.networkCalls())
}
