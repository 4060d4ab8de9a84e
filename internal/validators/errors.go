package validators

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every validation error, so transport layers
// can answer with a single client error status.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidVisibleCode = fmt.Errorf("%w: visible code must be one uppercase letter followed by a digit from 1 to 6", ErrInvalidInput)
	ErrEmptyAddress       = fmt.Errorf("%w: address is required", ErrInvalidInput)
	ErrInvalidColor       = fmt.Errorf("%w: unknown key color", ErrInvalidInput)
	ErrInvalidMode        = fmt.Errorf("%w: checkout mode must be self or other", ErrInvalidInput)
	ErrEmptyHolderName    = fmt.Errorf("%w: holder name is required", ErrInvalidInput)
	ErrInvalidHolderPhone = fmt.Errorf("%w: holder phone must contain digits", ErrInvalidInput)
	ErrEmptyReason        = fmt.Errorf("%w: deletion reason is required", ErrInvalidInput)
	ErrEmptyUsername      = fmt.Errorf("%w: username is required", ErrInvalidInput)
	ErrEmptyPassword      = fmt.Errorf("%w: password is required", ErrInvalidInput)
	ErrInvalidRole        = fmt.Errorf("%w: role must be ADMIN or USER", ErrInvalidInput)
)
