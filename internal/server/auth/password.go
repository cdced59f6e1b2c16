package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is deliberately slow; matches the work factor the platform
// has always used for stored credentials.
const bcryptCost = 12

// HashPassword derives a salted one-way hash of the plaintext. The salt is
// random per call, so hashing the same password twice yields different
// strings.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
// A malformed hash is treated as a mismatch, never an error.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
