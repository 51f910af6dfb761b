package storage

import "time"

type Product struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Brand    string   `json:"brand"`
	Price    int64    `json:"price"`
	Color    string   `json:"color"`
	Features []string `json:"features"`
	Rating   float64  `json:"rating"`
	Stock    int      `json:"stock"`
	Image    string   `json:"image,omitempty"`
}

type Order struct {
	OrderID    int64     `json:"order_id"`
	UserID     string    `json:"user_id"`
	ProductID  int64     `json:"product_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice int64     `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ReturnReview struct {
	ReviewID  int64     `json:"review_id"`
	OrderID   int64     `json:"order_id"`
	UserID    string    `json:"user_id"`
	Reason    string    `json:"reason,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ReturnRequest struct {
	ReturnID     int64      `json:"return_id"`
	OrderID      int64      `json:"order_id"`
	Reason       string     `json:"reason,omitempty"`
	Status       string     `json:"status"`
	RefundAmount int64      `json:"refund_amount"`
	Flagged      bool       `json:"flagged,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}
