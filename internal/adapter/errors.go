package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	ErrNoFileName = errors.New("export response has no file name")
)

// APIError is a non-2xx response of the server.
type APIError struct {
	Status  int
	Code    string
	Message string

	kind error
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %s", e.kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.kind, e.Code, e.Message)
}

// Unwrap returns the status sentinel, so errors.Is(err, ErrConflict) works.
func (e *APIError) Unwrap() error {
	return e.kind
}
