// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the format of API requests before they reach
// the key registry.
//
// Format rules (a visible code is one uppercase letter and a digit 1-6, a
// third-party checkout needs name and phone, a deletion needs a reason) live
// here. State rules (duplicate codes, status transitions) belong to the
// service layer.
//
// Every validation error wraps [ErrInvalidInput].
package validators

import "context"

// Validator validates an input value and optionally restricts validation to
// specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
