package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-key-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldVisibleCode = "visible_code"
	FieldAddress     = "address"
	FieldColor       = "color"
	FieldMode        = "mode"
	FieldHolder      = "holder"
	FieldReason      = "reason"
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldRole        = "role"
)

// visibleCodePattern is the label printed on a key ring: A1 ... Z6.
var visibleCodePattern = regexp.MustCompile(`^[A-Z][1-6]$`)

// RequestValidator implements [Validator] for the request bodies of the key
// and account API.
type RequestValidator struct{}

// NewRequestValidator constructs a new RequestValidator and returns it as
// the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation by the dynamic type of obj. Both value and
// pointer forms of each request are accepted. When fields is empty every
// field of the request is checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateKeyRequest:
		return v.validateCreateKey(value, fields...)
	case *models.CreateKeyRequest:
		return v.validateCreateKey(*value, fields...)
	case models.RenameKeyRequest:
		return v.validateRenameKey(value, fields...)
	case *models.RenameKeyRequest:
		return v.validateRenameKey(*value, fields...)
	case models.CheckoutRequest:
		return v.validateCheckout(value, fields...)
	case *models.CheckoutRequest:
		return v.validateCheckout(*value, fields...)
	case models.DeleteKeyRequest:
		return v.validateDeleteKey(value, fields...)
	case *models.DeleteKeyRequest:
		return v.validateDeleteKey(*value, fields...)
	case models.AddAccountRequest:
		return v.validateAddAccount(value, fields...)
	case *models.AddAccountRequest:
		return v.validateAddAccount(*value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCreateKey(request models.CreateKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVisibleCode, FieldAddress, FieldColor}
	}

	for _, f := range fields {
		switch f {
		case FieldVisibleCode:
			if !IsVisibleCode(request.VisibleCode) {
				return ErrInvalidVisibleCode
			}
		case FieldAddress:
			if strings.TrimSpace(request.Address) == "" {
				return ErrEmptyAddress
			}
		case FieldColor:
			if !request.Color.Valid() {
				return ErrInvalidColor
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRenameKey(request models.RenameKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVisibleCode}
	}

	for _, f := range fields {
		switch f {
		case FieldVisibleCode:
			if !IsVisibleCode(request.VisibleCode) {
				return ErrInvalidVisibleCode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCheckout checks the holder only for the "other" mode; in "self"
// mode the holder is the caller.
func (v *RequestValidator) validateCheckout(request models.CheckoutRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMode, FieldHolder}
	}

	for _, f := range fields {
		switch f {
		case FieldMode:
			if request.Mode != models.CheckoutSelf && request.Mode != models.CheckoutOther {
				return ErrInvalidMode
			}
		case FieldHolder:
			if request.Mode != models.CheckoutOther {
				continue
			}
			if strings.TrimSpace(request.HolderName) == "" {
				return ErrEmptyHolderName
			}
			if !hasDigit(request.HolderPhone) {
				return ErrInvalidHolderPhone
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateDeleteKey(request models.DeleteKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReason}
	}

	for _, f := range fields {
		switch f {
		case FieldReason:
			if strings.TrimSpace(request.Reason) == "" {
				return ErrEmptyReason
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateAddAccount(request models.AddAccountRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(request.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		case FieldRole:
			if !request.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsVisibleCode reports whether code has the printed label format.
func IsVisibleCode(code string) bool {
	return visibleCodePattern.MatchString(code)
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
