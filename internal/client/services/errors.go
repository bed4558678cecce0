package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrTokenMissing reports an HTTP-level success whose body lacks a
	// required token. Treated as a failure; nothing is written to the store.
	ErrTokenMissing = errors.New("token is missing in the response")

	// ErrNotAuthenticated reports a protected operation attempted without a
	// stored access token. Surfaces redirect to the unauthenticated flow.
	ErrNotAuthenticated = errors.New("user not authenticated")

	// ErrUploadInFlight rejects a second upload invocation while one is
	// still running.
	ErrUploadInFlight = errors.New("an upload is already in progress")
)

// FieldErrors maps input field names to user-facing validation messages.
// It never reaches the network: an operation that returns FieldErrors made
// zero backend calls.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fe))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
