package sqlkv

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrations embed.FS

// RunMigrations applies the embedded migrations of d to db. Running it on an
// up-to-date database is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB, d Dialect) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.GooseDialect); err != nil {
		return fmt.Errorf("failed to set goose dialect %s: %w", d.GooseDialect, err)
	}
	if err := goose.UpContext(ctx, db, d.migrationsDir); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", d.Name, err)
	}
	return nil
}
