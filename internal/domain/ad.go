package domain

import (
	"errors"
	"time"
)

// Common ad validation errors
var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrEmptyAdOwner     = errors.New("ad must reference an owning user")
)

// Ad represents a classified listing posted by a user.
type Ad struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      int64     `json:"user_id"`
}

// NewAd creates a new Ad owned by the given user. The ID is left zero and
// assigned by the store on creation. If createdAt is the zero time, the
// creation timestamp defaults to now (UTC).
// Returns an error if validation fails.
func NewAd(title, description string, userID int64, createdAt time.Time) (*Ad, error) {
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	ad := &Ad{
		Title:       title,
		Description: description,
		CreatedAt:   createdAt,
		UserID:      userID,
	}

	if err := ad.Validate(); err != nil {
		return nil, err
	}

	return ad, nil
}

// Validate checks if the Ad has valid data.
// Returns an error if any field fails validation.
func (a *Ad) Validate() error {
	if a.Title == "" {
		return ErrEmptyTitle
	}

	if a.Description == "" {
		return ErrEmptyDescription
	}

	if a.UserID <= 0 {
		return ErrEmptyAdOwner
	}

	return nil
}
