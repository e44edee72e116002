package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/lib/pq"
)

// MigrationsTable is where golang-migrate records the schema version
const MigrationsTable = "schema_migrations"

// Status is the schema version of a database
type Status struct {
	Version uint
	Dirty   bool
	// None is true when no migration has been applied
	None bool
}

// WithMigrationsTable adds the migrations table parameter to a database URL
func WithMigrationsTable(dbURL string) string {
	sep := "?"
	if strings.Contains(dbURL, "?") {
		sep = "&"
	}
	return dbURL + sep + "x-migrations-table=" + MigrationsTable
}

// MigrateUp applies every pending migration. It reports whether anything
// changed.
func MigrateUp(dbURL string) (bool, error) {
	m, err := newMigrate(dbURL)
	if err != nil {
		return false, err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return false, nil
		}
		return false, fmt.Errorf("migration failed: %w", err)
	}
	return true, nil
}

// MigrateDown rolls back steps migrations
func MigrateDown(dbURL string, steps int) (Status, error) {
	m, err := newMigrate(dbURL)
	if err != nil {
		return Status{}, err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Steps(-steps); err != nil {
		return Status{}, fmt.Errorf("rollback failed: %w", err)
	}
	return status(m)
}

// MigrationStatus returns the current schema version
func MigrationStatus(dbURL string) (Status, error) {
	m, err := newMigrate(dbURL)
	if err != nil {
		return Status{}, err
	}
	defer func() { _, _ = m.Close() }()
	return status(m)
}

func status(m *migrate.Migrate) (Status, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Status{None: true}, nil
	}
	if err != nil {
		return Status{}, err
	}
	return Status{Version: version, Dirty: dirty}, nil
}

func newMigrate(dbURL string) (*migrate.Migrate, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("COMPLY_DATABASE_URL environment variable is required")
	}
	m, err := createMigrateInstance(WithMigrationsTable(dbURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}
