package credentials

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dpetrovs/brewclub/internal/client/credentials/migrations"
	"github.com/pressly/goose/v3"
)

// OpenDatabase opens the local SQLite database at dsn and applies pending
// migrations. The returned handle is shared by the process; callers own
// closing it.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}
