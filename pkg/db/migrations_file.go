//go:build !embed_migrations

package db

import (
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const defaultMigrationsPath = "db/migrations"

// MigrationsPath is the migrations directory, overridable with
// COMPLY_MIGRATIONS_PATH
func MigrationsPath() string {
	if p := os.Getenv("COMPLY_MIGRATIONS_PATH"); p != "" {
		return p
	}
	return defaultMigrationsPath
}

func createMigrateInstance(dbURL string) (*migrate.Migrate, error) {
	return migrate.New("file://"+MigrationsPath(), dbURL)
}
