// Package migrations applies the embedded SQL schema to PostgreSQL with golang-migrate.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var files embed.FS

const (
	sourceName      = "iofs"
	databaseName    = "pgx5"
	migrationsTable = "schema_migrations"
)

// Source returns the embedded migrations as a golang-migrate source.
func Source() (source.Driver, error) {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	return src, nil
}

// newMigrate binds the embedded source to db. db is closed with the
// returned Migrate, or right away on error.
func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	src, err := Source()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{MigrationsTable: migrationsTable})
	if err != nil {
		_ = src.Close()
		_ = db.Close()
		return nil, fmt.Errorf("init migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance(sourceName, src, databaseName, driver)
	if err != nil {
		_ = src.Close()
		_ = driver.Close()
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	return m, nil
}

// Apply runs every pending up migration. db is closed on return.
func Apply(ctx context.Context, db *sql.DB) error {
	return run(ctx, db, func(m *migrate.Migrate) error { return m.Up() })
}

// Rollback reverts the last steps migrations. db is closed on return.
func Rollback(ctx context.Context, db *sql.DB, steps int) error {
	if steps <= 0 {
		_ = db.Close()
		return fmt.Errorf("rollback steps must be positive, got %d", steps)
	}
	return run(ctx, db, func(m *migrate.Migrate) error { return m.Steps(-steps) })
}

// Status reports the current schema version. A database that was never
// migrated reports version 0. db is closed on return.
func Status(db *sql.DB) (version uint, dirty bool, err error) {
	m, err := newMigrate(db)
	if err != nil {
		return 0, false, err
	}
	defer closeMigrate(m)

	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read schema version: %w", err)
	}
	return version, dirty, nil
}

func run(ctx context.Context, db *sql.DB, step func(*migrate.Migrate) error) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	// Cancelling ctx stops after the migration in progress.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			m.GracefulStop <- true
		case <-done:
		}
	}()

	err = step(m)
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Info().Msg("Schema already up to date")
	case err != nil:
		return fmt.Errorf("migrate: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Schema version")
	return nil
}

func closeMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Warn().Err(srcErr).Msg("Failed to close migration source")
	}
	if dbErr != nil {
		log.Warn().Err(dbErr).Msg("Failed to close migration database")
	}
}
