package repository

import (
	"context"
	"database/sql"

	"github.com/kmcrawford/crewbook/internal/directory"
)

// UserRepo handles directory users. It satisfies directory.Lookup, so
// screens cannot tell it apart from the in-memory table.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Upsert(ctx context.Context, u directory.User) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO users(id, name, email, created_at, updated_at)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 email=excluded.email,
	 updated_at=CURRENT_TIMESTAMP;
	`, u.ID, u.Name, u.Email)
	return err
}

// Find returns the user with id, or nil when no row matches.
func (r *UserRepo) Find(ctx context.Context, id int) (*directory.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, email FROM users WHERE id = ?`, id)
	var u directory.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]directory.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []directory.User
	for rows.Next() {
		var u directory.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
