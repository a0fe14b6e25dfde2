package domain

import "errors"

// Validation failures surfaced synchronously to the caller.
// All are scoped to a single call; none leave shared state behind.
var (
	ErrInvalidCoordinate  = errors.New("coordinate out of range")
	ErrEmptyOrderSet      = errors.New("order set is empty")
	ErrInsufficientOrders = errors.New("at least two orders are required to merge")
	ErrDuplicateStop      = errors.New("order appears more than once in set")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("invalid order status transition")
)
