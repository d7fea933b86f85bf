package sqldb

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"tinyfox/db/migrations"
)

// Migrate applies the embedded goose migrations for the pool's dialect.
func Migrate(ctx context.Context, db *DB) error {
	var (
		dir     string
		dialect goose.Dialect
	)

	switch db.Dialect {
	case DialectPostgres:
		dir, dialect = "postgres", goose.DialectPostgres
	case DialectSQLite:
		dir, dialect = "sqlite", goose.DialectSQLite3
	default:
		return fmt.Errorf("migrate: unknown dialect %q", db.Dialect)
	}

	fsys, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db.DB, fsys)
	if err != nil {
		return fmt.Errorf("migrate: new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrate: up: %w", err)
	}

	return nil
}
