// Package credentials persists the session token pair in the client's local
// database. The store is the single piece of state shared by every other
// component: the auth gateway writes it, the session validator and the
// profile/upload services read it, and logout clears it.
package credentials

import (
	"context"

	"github.com/dpetrovs/brewclub/internal/client/models"
)

// Store is durable key-value persistence for the access/refresh token pair.
//
// Contract:
//   - Save: replaces the stored pair wholesale; both entries are durable
//     before Save returns.
//   - Load: returns the stored pair, or (nil, nil) when no session exists.
//     Absent state is an expected outcome, not an error.
//   - Clear: removes both entries atomically; no subsequent Load may observe
//     a half-cleared pair.
//
// All methods must honor context cancellation.
type Store interface {
	Save(ctx context.Context, pair models.TokenPair) error
	Load(ctx context.Context) (*models.TokenPair, error)
	Clear(ctx context.Context) error
}
