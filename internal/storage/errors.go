package storage

import "errors"

// Failure taxonomy exposed to callers. Every store operation returns one of
// these (possibly wrapped) or a storage failure with context; repository and
// driver errors never cross this boundary raw.
var (
	ErrNotFound          = errors.New("not found")
	ErrNotOwner          = errors.New("not your order")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrValidation        = errors.New("validation failed")
)
