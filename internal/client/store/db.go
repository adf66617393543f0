// Package store opens the client-side SQLite database and hands out the
// repositories built on top of it.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"siteproof/internal/client/kv"
	"siteproof/internal/client/migrations"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	State kv.Repository
	DB    *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite database at dsn, migrates it, and returns the
// repository set. The caller owns Repositories.DB and must close it.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		State: kv.NewSQLiteRepository(db),
		DB:    db,
	}, nil
}
