package service

import (
	"errors"
	"fmt"
)

// Registry error taxonomy. Every state violation wraps ErrInvalidState so
// callers can match either the precise or the general condition.
var (
	ErrDuplicateCode = errors.New("visible code is already used by another key")
	ErrKeyNotFound   = errors.New("key not found")
	ErrInvalidState  = errors.New("invalid key state")

	ErrKeyAlreadyCheckedOut = fmt.Errorf("%w: key is already checked out", ErrInvalidState)
	ErrKeyNotCheckedOut     = fmt.Errorf("%w: key is not checked out", ErrInvalidState)
	ErrKeyDeleted           = fmt.Errorf("%w: key is deleted", ErrInvalidState)
	ErrKeyAlreadyDeleted    = fmt.Errorf("%w: key is already deleted", ErrInvalidState)
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrLogEntryNotFound = errors.New("audit log entry not found")
	ErrNotOverdue       = errors.New("checkout is not overdue")
	ErrNoHolderPhone    = errors.New("holder has no phone number")

	ErrPersistState   = errors.New("failed to persist state")
	ErrStateNotLoaded = errors.New("state is not loaded")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	ErrAccessDenied      = errors.New("access denied")
	ErrServerUnavailable = errors.New("server unavailable")
	ErrNotLoggedIn       = errors.New("not logged in")
)
