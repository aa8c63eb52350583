package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product id cannot be resolved.
	ErrProductNotFound = errors.New("product not found")
	// ErrBillNotFound is returned when a bill id cannot be resolved.
	ErrBillNotFound = errors.New("bill not found")
)
