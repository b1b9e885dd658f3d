package store

import (
	"context"

	"github.com/nvoronina/adboard-api/internal/domain"
)

// AdStore defines the interface for ad data persistence.
type AdStore interface {
	// GetByID retrieves an ad by its unique ID.
	// Returns ErrAdNotFound if the ad does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Ad, error)

	// Create saves a new ad to the store and assigns its ID.
	// Returns ErrBadLuck if the ad's user_id does not reference an
	// existing user.
	Create(ctx context.Context, ad *domain.Ad) error

	// Delete removes an ad from the store by its ID.
	// Returns ErrAdNotFound if the ad does not exist.
	Delete(ctx context.Context, id int64) error
}
