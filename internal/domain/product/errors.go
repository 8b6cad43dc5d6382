package product

import "errors"

var (
	ErrNotFound   = errors.New("product not found")
	ErrNameExists = errors.New("product with this name already exists")
)
