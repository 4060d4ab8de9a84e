// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/adapter"
	"github.com/MKhiriev/go-key-keeper/internal/app"
	"github.com/MKhiriev/go-key-keeper/internal/validators"
)

var codeErrors = map[string]error{
	app.CodeInvalidInput:       validators.ErrInvalidInput,
	app.CodeDuplicateCode:      ErrDuplicateCode,
	app.CodeInvalidState:       ErrInvalidState,
	app.CodeNotOverdue:         ErrNotOverdue,
	app.CodeNoHolderPhone:      ErrNoHolderPhone,
	app.CodeInvalidCredentials: ErrInvalidCredentials,
	app.CodeUnauthorized:       ErrTokenIsExpiredOrInvalid,
	app.CodeForbidden:          ErrAccessDenied,
	app.CodeStorage:            ErrPersistState,
}

// mapAdapterError translates the adapter's transport error into a service
// business error. NOT_FOUND becomes notFound, since the same code is used for
// keys, accounts and log entries.
func mapAdapterError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	if apiErr.Code == app.CodeNotFound && notFound != nil {
		return fmt.Errorf("%w: %s", notFound, apiErr.Message)
	}
	if target, ok := codeErrors[apiErr.Code]; ok {
		return fmt.Errorf("%w: %s", target, apiErr.Message)
	}

	return err
}
