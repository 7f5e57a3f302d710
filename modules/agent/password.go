package agent

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost trades hashing time against brute-force resistance. 12 keeps
// registration and authentication under interactive latency.
const bcryptCost = 12

// PasswordHasher produces and verifies salted bcrypt hashes of agent
// passwords. The salt is embedded in the hash, so equal passwords never
// share a stored hash.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher with the package cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcryptCost}
}

// Hash derives a salted hash from the password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether the password matches the stored hash.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
