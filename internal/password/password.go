// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned by Hash for inputs bcrypt cannot represent (over 72 bytes).
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// Hasher produces salted bcrypt hashes at a fixed cost.
type Hasher struct {
	cost int
}

// New creates a Hasher. Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of plaintext. A fresh salt is generated on every call.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hash. A malformed hash never matches.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
