package store

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/schema"
)

//go:embed migrations
var migrationsFS embed.FS

// migrationsDir returns the embedded directory holding a backend's migrations.
func migrationsDir(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.PostgreSQLBackend:
		return "migrations/postgres"
	case schema.MySQLBackend:
		return "migrations/mysql"
	default:
		return "migrations/sqlite"
	}
}

// Migrate runs database migrations for the traffic table.
// - If targetVersion < 0, it migrates to the latest version.
// - If targetVersion == 0, it rolls back all migrations (to initial state).
// - If targetVersion > 0, it migrates to the specified version.
func Migrate(backend schema.DatabaseBackend, connStr string, targetVersion int) error {
	if backend == schema.SQLiteBackend && connStr != "" && !strings.HasPrefix(connStr, "file:") && connStr != ":memory:" {
		if err := contract.EnsureParentDir(connStr); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := Open(backend, connStr)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// Create a migrate driver instance
	var driver database.Driver
	switch backend {
	case schema.SQLiteBackend:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
		if err != nil {
			return fmt.Errorf("failed to create SQLite migrate driver: %w", err)
		}
	case schema.MySQLBackend:
		driver, err = mysql.WithInstance(db, &mysql.Config{})
		if err != nil {
			return fmt.Errorf("failed to create MySQL migrate driver: %w", err)
		}
	case schema.PostgreSQLBackend:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
		if err != nil {
			return fmt.Errorf("failed to create PostgreSQL migrate driver: %w", err)
		}
	}

	sourceDriver, err := iofs.New(migrationsFS, migrationsDir(backend))
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "repulse", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in a dirty state at version %d. Please fix manually or force version", currentVersion)
	}

	switch {
	case targetVersion < 0:
		err = m.Up()
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to migrate to latest version: %w", err)
		}
		if errors.Is(err, migrate.ErrNoChange) {
			contract.LogInfo("No migration needed. Database is already at the latest version.")
		} else {
			newVersion, _, _ := m.Version()
			contract.LogInfo("Successfully migrated from version %d to version %d", currentVersion, newVersion)
		}
	case targetVersion == 0:
		err = m.Down()
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to roll back to version 0: %w", err)
		}
		if errors.Is(err, migrate.ErrNoChange) {
			contract.LogInfo("No migration needed. Database is already at version 0")
		} else {
			contract.LogInfo("Successfully rolled back from version %d to version 0", currentVersion)
		}
	default:
		err = m.Migrate(uint(targetVersion))
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to migrate to version %d: %w", targetVersion, err)
		}
		if errors.Is(err, migrate.ErrNoChange) {
			contract.LogInfo("No migration needed. Database is already at version %d", targetVersion)
		} else {
			contract.LogInfo("Successfully migrated from version %d to version %d", currentVersion, targetVersion)
		}
	}
	return nil
}
