// Package auth holds the credential store used by registration, login and profile
// updates.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/orris-inc/helpdesk/internal/domain/user"
)

var _ user.PasswordHasher = (*BcryptPasswordHasher)(nil)

// DefaultCost matches the cost earlier deployments hashed with.
const DefaultCost = 10

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}

// Verify returns the same error for a wrong password and a malformed hash.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("password verification failed")
	}
	return nil
}
