package postgresql

import (
	"context"
	"time"

	"shopgenie/internal/db"
	"shopgenie/internal/storage"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) storage.UserRepository {
	return &UserRepo{db: db}
}

// EnsureTx creates the user row on first reference. Existing rows are left
// untouched so created_at stays stable.
func (r *UserRepo) EnsureTx(ctx context.Context, tx db.Tx, userID string) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO users (user_id, created_at)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO NOTHING
    `, userID, time.Now().UTC())
	return err
}
