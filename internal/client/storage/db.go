// Package storage opens the client's local SQLite database and keeps its
// schema current. The database holds only session state; resource data is
// never cached locally.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

func runMigrations(ctx context.Context, db *sql.DB) error {
	sub, err := fs.Sub(Migrations, "migrations")
	if err != nil {
		return err
	}
	goose.SetBaseFS(sub)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite database at dsn and
// applies pending migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
