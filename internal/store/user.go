package store

import (
	"context"

	"github.com/nvoronina/adboard-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Create saves a new user to the store and assigns its ID.
	// The user's Password field must already contain the stored hash.
	// Returns ErrBadLuck if the username or email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrBadLuck if the user still owns ads (restrict policy).
	Delete(ctx context.Context, id int64) error
}
