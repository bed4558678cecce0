package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_SendsCredentials_ReturnsTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/users/login/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "secret123", body["password"])

		_ = json.NewEncoder(w).Encode(map[string]string{"access": "A1", "refresh": "R1"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, nil)
	resp, err := c.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "A1", resp.Access)
	assert.Equal(t, "R1", resp.Refresh)
}

func TestLogin_BackendError_SurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, nil)
	_, err := c.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", BackendMessage(err))
}

func TestLogin_ServerDown_WrapsErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed on purpose

	c := NewHTTPClient(srv.URL, nil)
	_, err := c.Login(context.Background(), "alice", "secret123")
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, BackendMessage(err))
}

func TestSignup_SendsSnakeCaseFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/users/signup/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "bob", body["username"])
		assert.Equal(t, "Bob", body["first_name"])
		assert.Equal(t, "Builder", body["last_name"])
		assert.Equal(t, "bob@example.com", body["email"])
		assert.Equal(t, "longenough", body["password"])

		_ = json.NewEncoder(w).Encode(map[string]string{"access": "A2"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, nil)
	resp, err := c.Signup(context.Background(), SignupRequest{
		Username:  "bob",
		FirstName: "Bob",
		LastName:  "Builder",
		Email:     "bob@example.com",
		Password:  "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, "A2", resp.Access)
}

func TestCurrentUser_SendsBearerToken_DecodesProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/users/me/", r.URL.Path)
		require.Equal(t, "Bearer A1", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]string{
			"username":      "alice",
			"first_name":    "Alice",
			"last_name":     "Smith",
			"profile_image": "https://cdn.example.com/alice.jpg",
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, nil)
	profile, err := c.CurrentUser(context.Background(), "A1")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice Smith", profile.FullName())
	assert.Equal(t, "https://cdn.example.com/alice.jpg", profile.ProfileImageURL)
}

func TestCurrentUser_MissingProfileImage_IsEmptyNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"username":   "alice",
			"first_name": "Alice",
			"last_name":  "Smith",
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, nil)
	profile, err := c.CurrentUser(context.Background(), "A1")
	require.NoError(t, err)
	assert.Empty(t, profile.ProfileImageURL)
}

func TestCurrentUser_401_MapsToErrUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, nil)
	_, err := c.CurrentUser(context.Background(), "stale")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateProfilePicture_PatchesImageURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/users/profile-picture/", r.URL.Path)
		require.Equal(t, "Bearer A1", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://media.example.com/x.jpg", body["profile_image"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, nil)
	err := c.UpdateProfilePicture(context.Background(), "A1", "https://media.example.com/x.jpg")
	require.NoError(t, err)
}
