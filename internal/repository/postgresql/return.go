package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"shopgenie/internal/db"
	"shopgenie/internal/repository"
	"shopgenie/internal/storage"
)

type ReturnRepo struct {
	db db.DB
}

func NewReturnRepo(db db.DB) storage.ReturnRepository {
	return &ReturnRepo{db: db}
}

func (r *ReturnRepo) CreateTx(ctx context.Context, tx db.Tx, ret *repository.ReturnRequest) error {
	return tx.Get(ctx, &ret.ReturnID, `
        INSERT INTO returns (
            order_id, user_id, reason, status, refund_amount, created_at, completed_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING return_id
    `, ret.OrderID, ret.UserID, ret.Reason, ret.Status, ret.RefundAmount, ret.CreatedAt, ret.CompletedAt)
}

func (r *ReturnRepo) GetByID(ctx context.Context, id int64) (*repository.ReturnRequest, error) {
	var ret repository.ReturnRequest
	err := r.db.Get(ctx, &ret, "SELECT * FROM returns WHERE return_id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &ret, nil
}

func (r *ReturnRepo) CountByUserID(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.Get(ctx, &count, "SELECT COUNT(*) FROM returns WHERE user_id = $1", userID)
	return count, err
}

func (r *ReturnRepo) CountByOrderID(ctx context.Context, orderID int64) (int, error) {
	var count int
	err := r.db.Get(ctx, &count, "SELECT COUNT(*) FROM returns WHERE order_id = $1", orderID)
	return count, err
}

func (r *ReturnRepo) GetPaginated(ctx context.Context, page, limit int) ([]*repository.ReturnRequest, error) {
	offset := (page - 1) * limit

	var returns []*repository.ReturnRequest
	err := r.db.Select(ctx, &returns, `
        SELECT * FROM returns
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `, limit, offset)
	return returns, err
}
