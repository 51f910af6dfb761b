package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

type OrderPlacedPayload struct {
	OrderID    int64     `json:"order_id"`
	UserID     string    `json:"user_id"`
	ProductID  int64     `json:"product_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice int64     `json:"total_price"`
	PlacedAt   time.Time `json:"placed_at"`
}

type ReturnRequestedPayload struct {
	ReturnID     int64     `json:"return_id"`
	OrderID      int64     `json:"order_id"`
	UserID       string    `json:"user_id"`
	Reason       string    `json:"reason,omitempty"`
	RefundAmount int64     `json:"refund_amount"`
	Flagged      bool      `json:"flagged"`
	RequestedAt  time.Time `json:"requested_at"`
}
