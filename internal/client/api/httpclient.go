package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dpetrovs/brewclub/internal/client/models"
)

const authorizationHeader = "Authorization"

// HTTPClient implements Client against the backend REST API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a backend client for the given base URL.
// If httpClient is nil, http.DefaultClient is used.
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{baseURL: baseURL, httpClient: httpClient}
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	body := map[string]string{"username": username, "password": password}

	var resp LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/login/", "", body, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &resp, nil
}

func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	var resp SignupResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/signup/", "", req, &resp); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	return &resp, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context, accessToken string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/me/", accessToken, nil, &profile); err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	return &profile, nil
}

func (c *HTTPClient) UpdateProfilePicture(ctx context.Context, accessToken, imageURL string) error {
	body := map[string]string{"profile_image": imageURL}

	if err := c.doJSON(ctx, http.MethodPatch, "/api/users/profile-picture/", accessToken, body, nil); err != nil {
		return fmt.Errorf("update profile picture: %w", err)
	}
	return nil
}

// doJSON issues a single JSON request and decodes the response into out (when
// out is non-nil). Non-2xx responses become a *StatusError carrying the
// backend "error" body field; transport failures wrap ErrUnavailable.
func (c *HTTPClient) doJSON(ctx context.Context, method, path, accessToken string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set(authorizationHeader, "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) mapError(resp *http.Response) error {
	var errBody struct {
		Error string `json:"error"`
	}
	// Best effort: the body may be empty or not JSON at all.
	_ = json.NewDecoder(resp.Body).Decode(&errBody)

	statusErr := &StatusError{StatusCode: resp.StatusCode, Message: errBody.Error}
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %w", ErrUnauthorized, statusErr)
	}
	return statusErr
}
