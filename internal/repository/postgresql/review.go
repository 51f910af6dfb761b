package postgresql

import (
	"context"

	"shopgenie/internal/db"
	"shopgenie/internal/repository"
	"shopgenie/internal/storage"
)

type ReviewRepo struct {
	db db.DB
}

func NewReviewRepo(db db.DB) storage.ReviewRepository {
	return &ReviewRepo{db: db}
}

func (r *ReviewRepo) CreateTx(ctx context.Context, tx db.Tx, review *repository.ReturnReview) error {
	return tx.Get(ctx, &review.ReviewID, `
        INSERT INTO return_reviews (
            order_id, user_id, reason, notes, created_at
        ) VALUES ($1, $2, $3, $4, $5)
        RETURNING review_id
    `, review.OrderID, review.UserID, review.Reason, review.Notes, review.CreatedAt)
}

func (r *ReviewRepo) GetPaginated(ctx context.Context, page, limit int) ([]*repository.ReturnReview, error) {
	offset := (page - 1) * limit

	var reviews []*repository.ReturnReview
	err := r.db.Select(ctx, &reviews, `
        SELECT * FROM return_reviews
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `, limit, offset)
	return reviews, err
}
