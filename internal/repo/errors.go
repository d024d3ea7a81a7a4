package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product id resolves to nothing,
	// including when a batch references a product that does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrBatchNotFound is returned when a batch id resolves to nothing.
	ErrBatchNotFound = errors.New("batch not found")

	// ErrUserNotFound is returned when a username resolves to nothing.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicatedValueUnique is returned on unique constraint violations.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")
)
