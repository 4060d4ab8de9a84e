package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptySecret is returned by HashSecret when there is nothing to hash.
var ErrEmptySecret = errors.New("empty secret")

// HashSecret derives a salted bcrypt hash from an account secret.
//
// The result embeds its own salt and cost, so it can be stored as-is and
// later checked with CompareSecret.
//
// Example usage:
//
//	hash, err := utils.HashSecret("adminpassword")
func HashSecret(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing secret: %w", err)
	}

	return string(hash), nil
}

// CompareSecret reports whether secret matches a hash produced by HashSecret.
// A malformed hash never matches.
func CompareSecret(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
