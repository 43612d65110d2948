package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kmcrawford/crewbook/internal/database/repository"
)

func TestSeedDefaultsIdempotent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)

	// Migrate through the open handle, the same path startup takes.
	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrationsWithDB(db, migrations))

	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, SeedDefaults(ctx, db))

	users, err := repository.NewUserRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "Ben Miller", users[1].Name)
}

func TestRunMigrationsWithDBIsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrationsWithDB(db, migrations))
	// A second run finds nothing to do and still succeeds.
	require.NoError(t, RunMigrationsWithDB(db, migrations))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	require.Equal(t, 0, count)
}
