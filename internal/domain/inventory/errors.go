package inventory

import "errors"

var (
	// ErrNotFound is returned when an inventory entry does not exist
	ErrNotFound = errors.New("inventory entry not found")

	// ErrProductNotFound is returned when an entry line references an unknown
	// product. Unlike sale lines, stock intake must target real products.
	ErrProductNotFound = errors.New("product not found")
)
