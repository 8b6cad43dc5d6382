package sale

import "errors"

var (
	// ErrNotFound is returned when a sale does not exist
	ErrNotFound = errors.New("sale not found")

	// ErrInvalidLineItem is returned when a line total does not equal
	// quantity * unit price
	ErrInvalidLineItem = errors.New("invalid line item: total must equal quantity * unit price")
)
