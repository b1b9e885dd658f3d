package domain

import (
	"errors"
	"strings"
)

// Common validation errors
var (
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrEmptyPassword = errors.New("password cannot be empty")
)

// User represents a registered account that can own ads.
// The Password field always holds the stored hash, never the raw value.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"` // Never expose the password hash in JSON
}

// NewUser creates a new User with the given username, email and hashed
// password. The ID is left zero and assigned by the store on creation.
// Returns an error if validation fails.
//
// NOTE: hashedPassword must already be the stored form; hashing is the
// caller's responsibility (see service/auth).
func NewUser(username, email, hashedPassword string) (*User, error) {
	user := &User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validateEmailFormat checks the minimal shape local@domain.tld. Request
// bodies get the stricter validator email tag; this covers users constructed
// directly in code.
func validateEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
