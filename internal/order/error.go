package order

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyCart       = errors.New("no order items")
	ErrInvalidQuantity = errors.New("invalid order quantity")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidLocation = errors.New("invalid location class")

	// -- Resource State --
	ErrOrderNotFound     = errors.New("order not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid order status transition")
)
