package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"

	"shopgenie/internal/db"
	"shopgenie/internal/repository"
	"shopgenie/internal/storage"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) storage.OrderRepository {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error {
	return tx.Get(ctx, &order.OrderID, `
        INSERT INTO orders (
            user_id, product_id, quantity, total_price, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING order_id
    `, order.UserID, order.ProductID, order.Quantity, order.TotalPrice, order.Status, order.CreatedAt, order.UpdatedAt)
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM orders WHERE order_id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Order, error) {
	var order repository.Order
	err := tx.Get(ctx, &order, "SELECT * FROM orders WHERE order_id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) UpdateStatusTx(ctx context.Context, tx db.Tx, id int64, status repository.OrderStatus) error {
	_, err := tx.Exec(ctx, `
        UPDATE orders
        SET status = $2, updated_at = $3
        WHERE order_id = $1
    `, id, status, time.Now().UTC())
	return err
}

func (r *OrderRepo) GetByUserID(ctx context.Context, userID string, limit int) ([]*repository.Order, error) {
	query := "SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC, order_id DESC"
	args := []interface{}{userID}

	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, query, args...)
	return orders, err
}
