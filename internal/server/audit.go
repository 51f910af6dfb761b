package server

import (
	"time"
)

// ToolCallEntry is one audited call from the orchestration layer.
type ToolCallEntry struct {
	Timestamp  time.Time     `json:"timestamp"`
	Method     string        `json:"method"`
	Path       string        `json:"path"`
	StatusCode int           `json:"status_code"`
	UserID     string        `json:"user_id,omitempty"`
	Duration   time.Duration `json:"duration_ns"`
}
