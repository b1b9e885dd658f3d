package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrUserNotFound, ErrAdNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrBadLuck is returned when the database rejects a write because it
	// would violate a constraint: a duplicate username or email on users,
	// or an ad whose user_id does not reference an existing user.
	ErrBadLuck = errors.New("constraint violation")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrAdNotFound indicates that the requested ad does not exist in the store.
	ErrAdNotFound = fmt.Errorf("%w: ad", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConstraintError checks if the error is a database constraint violation.
func IsConstraintError(err error) bool {
	return errors.Is(err, ErrBadLuck)
}
