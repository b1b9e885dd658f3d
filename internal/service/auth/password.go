package auth

import (
	"crypto/md5" //nolint:gosec // legacy scheme kept for stored-value compatibility
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher defines the interface for hashing passwords and comparing
// them against stored hashes.
type PasswordHasher interface {
	// Hash derives the stored form of a raw password.
	Hash(password string) (string, error)

	// Compare compares a stored hash with its possible plaintext equivalent.
	// Returns nil on success, or ErrPasswordMismatch on failure.
	Compare(hashedPassword, password string) error
}

// LegacyHasher implements PasswordHasher with the scheme the original
// deployment used: hex(md5(raw password + fixed salt)). The scheme is
// deliberately weak and kept only because stored hashes are observable
// state; new deployments should prefer BcryptHasher.
type LegacyHasher struct {
	salt string
}

// NewLegacyHasher creates a LegacyHasher with the given fixed salt.
func NewLegacyHasher(salt string) *LegacyHasher {
	return &LegacyHasher{salt: salt}
}

// Hash implements the PasswordHasher interface.
func (h *LegacyHasher) Hash(password string) (string, error) {
	sum := md5.Sum([]byte(password + h.salt)) //nolint:gosec
	return hex.EncodeToString(sum[:]), nil
}

// Compare implements the PasswordHasher interface. The comparison is
// constant-time over the hex digests.
func (h *LegacyHasher) Compare(hashedPassword, password string) error {
	computed, err := h.Hash(password)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(computed), []byte(hashedPassword)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

// BcryptHasher implements PasswordHasher using bcrypt. Selecting it changes
// the stored hash format and breaks compatibility with legacy rows.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the given cost.
// A cost below bcrypt.MinCost falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash implements the PasswordHasher interface.
func (h *BcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash failed: %w", err)
	}
	return string(bytes), nil
}

// Compare implements the PasswordHasher interface.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
