package cli

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/shivtchandra/CivicWatch/internal/client/migrations"
	"github.com/shivtchandra/CivicWatch/internal/client/repositories/metadata"
)

// Repositories bundles the local storage backends the CLI uses.
type Repositories struct {
	Metadata metadata.Repository
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (or creates) the local SQLite file, applies migrations
// and returns the repository set.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		Metadata: metadata.NewSQLiteRepository(db),
	}, nil
}
