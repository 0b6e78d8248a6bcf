// Package auth holds the credential boundary of taskbox: password
// hashing, signed token issue/verify, and the cookie that carries the
// token between requests.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt work factor. Raising it only affects new hashes, stored ones
// keep the cost they were created with.
const hashCost = 10

// HashPassword turns a plaintext password into a salted bcrypt hash
// that is safe to persist. Two calls with the same input produce
// different hashes.
func HashPassword(plaintext string) (string, error) {
	buf, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", fmt.Errorf("unable to hash password, cause %w", err)
	}
	return string(buf), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
// A mismatch is a false, not an error; an error means the stored hash
// itself is broken and the record cannot be trusted.
func VerifyPassword(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("unable to verify password against stored hash, cause %w", err)
	}
	return true, nil
}
