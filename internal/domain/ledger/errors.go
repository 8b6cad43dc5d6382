package ledger

import "errors"

var (
	// ErrInvalidAmount is returned when a posted amount is <= 0
	ErrInvalidAmount = errors.New("invalid amount: must be greater than 0")

	// ErrInvalidKind is returned for an unknown transaction kind
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrCustomerNotFound is returned when the customer id does not resolve
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrConflictingUpdate is returned when a concurrent balance mutation lost
	// a race at the store layer. Callers retry with fresh state; the ledger
	// itself never retries.
	ErrConflictingUpdate = errors.New("conflicting concurrent update")
)
