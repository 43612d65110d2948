package database

import (
	"context"
	"database/sql"

	"github.com/kmcrawford/crewbook/internal/database/repository"
	"github.com/kmcrawford/crewbook/internal/directory"
)

// SeedDefaults ensures the fixed directory rows exist for new
// databases. It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewUserRepo(db)
	existing, err := repo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	for _, u := range directory.DefaultUsers {
		if err := repo.Upsert(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
