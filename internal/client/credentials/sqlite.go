package credentials

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dpetrovs/brewclub/internal/client/models"
	"github.com/dpetrovs/brewclub/internal/dbx"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
)

// SQLiteStore keeps the token pair as two independently keyed rows in the
// credentials table. Save and Clear touch both rows in one transaction, so a
// concurrent Load never sees a partial pair.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Save(ctx context.Context, pair models.TokenPair) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyAccessToken, pair.AccessToken); err != nil {
			return err
		}
		return set(ctx, tx, keyRefreshToken, pair.RefreshToken)
	})
}

// Load returns the stored pair, or (nil, nil) when no access token row
// exists. A session is keyed off the access token; the refresh token row may
// be empty (signup responses carry no refresh token).
func (s *SQLiteStore) Load(ctx context.Context) (*models.TokenPair, error) {
	access, ok, err := get(ctx, s.db, keyAccessToken)
	if err != nil {
		return nil, err
	}
	if !ok || access == "" {
		return nil, nil
	}

	refresh, _, err := get(ctx, s.db, keyRefreshToken)
	if err != nil {
		return nil, err
	}

	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE key IN (?, ?)`, keyAccessToken, keyRefreshToken)
		if err != nil {
			return fmt.Errorf("failed to clear credentials: %w", err)
		}
		return nil
	})
}

func set(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func get(ctx context.Context, db dbx.DBTX, key string) (string, bool, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, true, nil
}
