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

type ProductRepo struct {
	db db.DB
}

func NewProductRepo(db db.DB) storage.ProductRepository {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) List(ctx context.Context) ([]*repository.Product, error) {
	var products []*repository.Product
	err := r.db.Select(ctx, &products, "SELECT * FROM products ORDER BY id ASC")
	return products, err
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*repository.Product, error) {
	var product repository.Product
	err := r.db.Get(ctx, &product, "SELECT * FROM products WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Product, error) {
	var product repository.Product
	err := tx.Get(ctx, &product, "SELECT * FROM products WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &product, nil
}

// DecrementStockTx reduces stock by qty only when enough units remain.
// Returns false when the guard rejected the decrement.
func (r *ProductRepo) DecrementStockTx(ctx context.Context, tx db.Tx, id int64, qty int) (bool, error) {
	tag, err := tx.Exec(ctx, `
        UPDATE products
        SET stock = stock - $2, updated_at = $3
        WHERE id = $1 AND stock >= $2
    `, id, qty, time.Now().UTC())
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ProductRepo) RestoreStockTx(ctx context.Context, tx db.Tx, id int64, qty int) error {
	_, err := tx.Exec(ctx, `
        UPDATE products
        SET stock = stock + $2, updated_at = $3
        WHERE id = $1
    `, id, qty, time.Now().UTC())
	return err
}
