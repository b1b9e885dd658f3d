package auth

import "errors"

// Common authentication service errors
var (
	// ErrAuth indicates an authentication failure. It is part of the error
	// taxonomy (mapped to 401) but no handler currently raises it; it is
	// reserved for future authenticated endpoints.
	ErrAuth = errors.New("auth error")

	// ErrPasswordMismatch indicates the supplied password does not match
	// the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")
)
