package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shopgenie/internal/db"
	"shopgenie/internal/metrics"
	"shopgenie/internal/repository"
)

//go:generate mockgen -source ./store.go -destination=./mocks/store.go -package=mock_storage

const ShopEventsTopic = "shop_events"

type ProductRepository interface {
	List(ctx context.Context) ([]*repository.Product, error)
	GetByID(ctx context.Context, id int64) (*repository.Product, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Product, error)
	DecrementStockTx(ctx context.Context, tx db.Tx, id int64, qty int) (bool, error)
	RestoreStockTx(ctx context.Context, tx db.Tx, id int64, qty int) error
}

type UserRepository interface {
	EnsureTx(ctx context.Context, tx db.Tx, userID string) error
}

type OrderRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error
	GetByID(ctx context.Context, id int64) (*repository.Order, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Order, error)
	UpdateStatusTx(ctx context.Context, tx db.Tx, id int64, status repository.OrderStatus) error
	GetByUserID(ctx context.Context, userID string, limit int) ([]*repository.Order, error)
}

type ReturnRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, request *repository.ReturnRequest) error
	GetByID(ctx context.Context, id int64) (*repository.ReturnRequest, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
	CountByOrderID(ctx context.Context, orderID int64) (int, error)
	GetPaginated(ctx context.Context, page, limit int) ([]*repository.ReturnRequest, error)
}

type ReviewRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, review *repository.ReturnReview) error
	GetPaginated(ctx context.Context, page, limit int) ([]*repository.ReturnReview, error)
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, db db.DB, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

// ProductCache receives stock updates after a transaction commits so catalog
// snapshots stay close to the persisted state.
type ProductCache interface {
	Set(product *repository.Product)
}

type noopCache struct{}

func (noopCache) Set(*repository.Product) {}

type PostgresStore struct {
	db       db.DB
	products ProductRepository
	users    UserRepository
	orders   OrderRepository
	returns  ReturnRepository
	reviews  ReviewRepository
	outbox   OutboxTaskRepository
	cache    ProductCache
	logger   *zap.Logger
}

func NewPostgresStore(
	database db.DB,
	products ProductRepository,
	users UserRepository,
	orders OrderRepository,
	returns ReturnRepository,
	reviews ReviewRepository,
	outbox OutboxTaskRepository,
	cache ProductCache,
	logger *zap.Logger,
) *PostgresStore {
	if cache == nil {
		cache = noopCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresStore{
		db:       database,
		products: products,
		users:    users,
		orders:   orders,
		returns:  returns,
		reviews:  reviews,
		outbox:   outbox,
		cache:    cache,
		logger:   logger,
	}
}

func (s *PostgresStore) ListProducts(ctx context.Context) ([]Product, error) {
	repoProducts, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]Product, len(repoProducts))
	for i, p := range repoProducts {
		products[i] = toServiceProduct(p)
	}
	return products, nil
}

func (s *PostgresStore) GetProduct(ctx context.Context, id int64) (*Product, error) {
	repoProduct, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	product := toServiceProduct(repoProduct)
	return &product, nil
}

// PlaceOrder decrements stock and creates the order as one transaction. The
// stock check and decrement are a single guarded UPDATE on the locked product
// row, so concurrent orders against the last unit cannot both succeed.
func (s *PostgresStore) PlaceOrder(ctx context.Context, userID string, productID int64, quantity int) (*Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := s.users.EnsureTx(ctx, tx, userID); err != nil {
		return nil, fmt.Errorf("failed to ensure user %s: %w", userID, err)
	}

	product, err := s.products.GetByIDTx(ctx, tx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	ok, err := s.products.DecrementStockTx(ctx, tx, productID, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to decrement stock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: only %d left", ErrInsufficientStock, product.Stock)
	}

	now := time.Now().UTC()
	order := &repository.Order{
		UserID:     userID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: product.Price * int64(quantity),
		Status:     repository.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.orders.CreateTx(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.enqueueTx(ctx, tx, repository.OrderPlacedPayload{
		OrderID:    order.OrderID,
		UserID:     userID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: order.TotalPrice,
		PlacedAt:   now,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	updated := *product
	updated.Stock -= quantity
	updated.UpdatedAt = now
	s.cache.Set(&updated)

	metrics.OrdersPlacedTotal.Inc()
	s.logger.Info("order placed",
		zap.Int64("order_id", order.OrderID),
		zap.String("user_id", userID),
		zap.Int64("product_id", productID),
		zap.Int("quantity", quantity),
	)

	result := toServiceOrder(order)
	return &result, nil
}

func (s *PostgresStore) GetUserOrders(ctx context.Context, userID string, limit int) ([]Order, error) {
	repoOrders, err := s.orders.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get user orders: %w", err)
	}

	orders := make([]Order, len(repoOrders))
	for i, o := range repoOrders {
		orders[i] = toServiceOrder(o)
	}
	return orders, nil
}

// GetOrder enforces ownership at the store boundary: an order belonging to a
// different user reads as ErrNotOwner, never as someone else's data.
func (s *PostgresStore) GetOrder(ctx context.Context, userID string, orderID int64) (*Order, error) {
	repoOrder, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if repoOrder.UserID != userID {
		return nil, ErrNotOwner
	}

	order := toServiceOrder(repoOrder)
	return &order, nil
}

// RequestReturn restores stock, marks the order returned and records the
// return request as one transaction. The refund amount is frozen at the
// order's original total.
func (s *PostgresStore) RequestReturn(ctx context.Context, userID string, orderID int64, reason string) (*ReturnRequest, error) {
	return s.createReturn(ctx, userID, orderID, reason, false)
}

// FlagReturnForReview records the same return request without touching stock
// or order status and queues the order for manual review.
func (s *PostgresStore) FlagReturnForReview(ctx context.Context, userID string, orderID int64, reason string) (*ReturnRequest, error) {
	return s.createReturn(ctx, userID, orderID, reason, true)
}

func (s *PostgresStore) createReturn(ctx context.Context, userID string, orderID int64, reason string, flagged bool) (*ReturnRequest, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	order, err := s.orders.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.UserID != userID {
		return nil, ErrNotOwner
	}
	if order.Status == repository.OrderStatusReturned {
		return nil, fmt.Errorf("%w: order %d is already returned", ErrValidation, orderID)
	}

	// Flagged returns leave the order status untouched, so the status check
	// alone does not catch a repeat request.
	existing, err := s.returns.CountByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to count returns for order: %w", err)
	}
	if existing > 0 {
		return nil, fmt.Errorf("%w: return already requested for order %d", ErrValidation, orderID)
	}

	now := time.Now().UTC()

	var restored *repository.Product
	if !flagged {
		product, err := s.products.GetByIDTx(ctx, tx, order.ProductID)
		if err != nil && !errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("failed to get product: %w", err)
		}
		if product != nil {
			if err := s.products.RestoreStockTx(ctx, tx, order.ProductID, order.Quantity); err != nil {
				return nil, fmt.Errorf("failed to restore stock: %w", err)
			}
			updated := *product
			updated.Stock += order.Quantity
			updated.UpdatedAt = now
			restored = &updated
		}

		if err := s.orders.UpdateStatusTx(ctx, tx, orderID, repository.OrderStatusReturned); err != nil {
			return nil, fmt.Errorf("failed to update order status: %w", err)
		}
	}

	ret := &repository.ReturnRequest{
		OrderID:      orderID,
		UserID:       userID,
		Reason:       reason,
		Status:       repository.ReturnStatusRequested,
		RefundAmount: order.TotalPrice,
		CreatedAt:    now,
	}
	if err := s.returns.CreateTx(ctx, tx, ret); err != nil {
		return nil, fmt.Errorf("failed to create return request: %w", err)
	}

	if flagged {
		review := &repository.ReturnReview{
			OrderID:   orderID,
			UserID:    userID,
			Reason:    reason,
			Notes:     "Awaiting review",
			CreatedAt: now,
		}
		if err := s.reviews.CreateTx(ctx, tx, review); err != nil {
			return nil, fmt.Errorf("failed to create return review: %w", err)
		}
	}

	if err := s.enqueueTx(ctx, tx, repository.ReturnRequestedPayload{
		ReturnID:     ret.ReturnID,
		OrderID:      orderID,
		UserID:       userID,
		Reason:       reason,
		RefundAmount: ret.RefundAmount,
		Flagged:      flagged,
		RequestedAt:  now,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit return: %w", err)
	}

	if restored != nil {
		s.cache.Set(restored)
	}

	metrics.ReturnsRequestedTotal.Inc()
	if flagged {
		metrics.ReturnsFlaggedTotal.Inc()
	}
	s.logger.Info("return recorded",
		zap.Int64("return_id", ret.ReturnID),
		zap.Int64("order_id", orderID),
		zap.String("user_id", userID),
		zap.Bool("flagged", flagged),
	)

	result := toServiceReturn(ret)
	result.Flagged = flagged
	return &result, nil
}

func (s *PostgresStore) GetReturnStatus(ctx context.Context, userID string, returnID int64) (*ReturnRequest, error) {
	repoReturn, err := s.returns.GetByID(ctx, returnID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("return %d: %w", returnID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get return: %w", err)
	}
	if repoReturn.UserID != userID {
		return nil, ErrNotOwner
	}

	ret := toServiceReturn(repoReturn)
	return &ret, nil
}

// ListReturns and ListReturnReviews back the operator views; they are not
// ownership-scoped.
func (s *PostgresStore) ListReturns(ctx context.Context, page, limit int) ([]ReturnRequest, error) {
	repoReturns, err := s.returns.GetPaginated(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list returns: %w", err)
	}

	returns := make([]ReturnRequest, len(repoReturns))
	for i, r := range repoReturns {
		returns[i] = toServiceReturn(r)
	}
	return returns, nil
}

func (s *PostgresStore) ListReturnReviews(ctx context.Context, page, limit int) ([]ReturnReview, error) {
	repoReviews, err := s.reviews.GetPaginated(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list return reviews: %w", err)
	}

	reviews := make([]ReturnReview, len(repoReviews))
	for i, r := range repoReviews {
		reviews[i] = toServiceReview(r)
	}
	return reviews, nil
}

func (s *PostgresStore) CountUserReturns(ctx context.Context, userID string) (int, error) {
	count, err := s.returns.CountByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count returns: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) enqueueTx(ctx context.Context, tx db.Tx, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	task := &repository.OutboxTask{
		Payload: raw,
		Topic:   ShopEventsTopic,
	}
	if err := s.outbox.CreateTx(ctx, tx, task); err != nil {
		return fmt.Errorf("failed to enqueue event: %w", err)
	}
	return nil
}

func toServiceProduct(p *repository.Product) Product {
	return Product{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Brand:    p.Brand,
		Price:    p.Price,
		Color:    p.Color,
		Features: p.Features,
		Rating:   p.Rating,
		Stock:    p.Stock,
		Image:    p.Image,
	}
}

func toServiceOrder(o *repository.Order) Order {
	return Order{
		OrderID:    o.OrderID,
		UserID:     o.UserID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func toServiceReview(r *repository.ReturnReview) ReturnReview {
	return ReturnReview{
		ReviewID:  r.ReviewID,
		OrderID:   r.OrderID,
		UserID:    r.UserID,
		Reason:    r.Reason,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
	}
}

func toServiceReturn(r *repository.ReturnRequest) ReturnRequest {
	return ReturnRequest{
		ReturnID:     r.ReturnID,
		OrderID:      r.OrderID,
		Reason:       r.Reason,
		Status:       string(r.Status),
		RefundAmount: r.RefundAmount,
		CreatedAt:    r.CreatedAt,
		CompletedAt:  r.CompletedAt,
	}
}
