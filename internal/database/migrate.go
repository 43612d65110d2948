package database

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies all pending up migrations at migrationsPath
// against the sqlite file at dbPath, opening its own connection.
func RunMigrations(dbPath, migrationsPath string) error {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		fmt.Sprintf("file:%s?_foreign_keys=on", dbPath),
	)
	if err != nil {
		return err
	}
	defer m.Close()
	return upIgnoringNoChange(m)
}

// RunMigrationsWithDB applies migrations through an already-open
// handle, so startup needs a single connection.
func RunMigrationsWithDB(db *sql.DB, migrationsPath string) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite3",
		driver,
	)
	if err != nil {
		return err
	}
	// Not closed: closing the migrator closes the caller's handle.
	return upIgnoringNoChange(m)
}

// upIgnoringNoChange treats an already-current schema as success.
func upIgnoringNoChange(m *migrate.Migrate) error {
	err := m.Up()
	if err == migrate.ErrNoChange {
		return nil
	}
	return err
}
