package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusReturned  OrderStatus = "returned"
)

type ReturnStatus string

const (
	ReturnStatusRequested ReturnStatus = "requested"
	ReturnStatusApproved  ReturnStatus = "approved"
	ReturnStatusRejected  ReturnStatus = "rejected"
	ReturnStatusCompleted ReturnStatus = "completed"
)

type Product struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	Brand     string    `db:"brand"`
	Price     int64     `db:"price"`
	Color     string    `db:"color"`
	Features  []string  `db:"features"`
	Rating    float64   `db:"rating"`
	Stock     int       `db:"stock"`
	Image     string    `db:"image"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type User struct {
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

type Order struct {
	OrderID    int64       `db:"order_id"`
	UserID     string      `db:"user_id"`
	ProductID  int64       `db:"product_id"`
	Quantity   int         `db:"quantity"`
	TotalPrice int64       `db:"total_price"`
	Status     OrderStatus `db:"status"`
	CreatedAt  time.Time   `db:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at"`
}

type ReturnRequest struct {
	ReturnID     int64        `db:"return_id"`
	OrderID      int64        `db:"order_id"`
	UserID       string       `db:"user_id"`
	Reason       string       `db:"reason"`
	Status       ReturnStatus `db:"status"`
	RefundAmount int64        `db:"refund_amount"`
	CreatedAt    time.Time    `db:"created_at"`
	CompletedAt  *time.Time   `db:"completed_at"`
}

// ReturnReview is a flagged return awaiting manual review. Stock is not
// restored until the review is resolved.
type ReturnReview struct {
	ReviewID  int64     `db:"review_id"`
	OrderID   int64     `db:"order_id"`
	UserID    string    `db:"user_id"`
	Reason    string    `db:"reason"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
}
