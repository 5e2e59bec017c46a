package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when a user insert violates the unique
	// email constraint. Relying on the constraint (rather than a prior
	// existence check) keeps concurrent registrations from racing past each
	// other.
	ErrDuplicateEmail = errors.New("email already registered")
)
