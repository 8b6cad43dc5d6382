package customer

import "errors"

var (
	ErrNotFound    = errors.New("customer not found")
	ErrPhoneExists = errors.New("customer with this phone already exists")
)
