// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, secret hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key used to store the authenticated account in the
// context. Only the id, username and role are set.
var CallerCtxKey = contextKey("caller")

// WithCaller returns a copy of ctx carrying the authenticated account.
func WithCaller(ctx context.Context, caller models.User) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}

// GetCallerFromContext retrieves the authenticated account from the context.
//
// Returns the account and an ok flag:
//   - ok == true  — value is found and has the correct models.User type
//   - ok == false — value is missing or has an unexpected type
func GetCallerFromContext(ctx context.Context) (models.User, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(models.User)
	return caller, ok
}
