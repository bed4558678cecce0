package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: the request never
	// produced an HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks 401 responses on protected calls.
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError is a non-2xx backend response. Message is the backend-provided
// "error" body field and may be empty; callers fall back to a generic message.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// BackendMessage extracts the backend-provided error message from err, or
// returns "" when the failure carried none (network errors, empty bodies).
func BackendMessage(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Message
	}
	return ""
}
