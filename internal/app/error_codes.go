// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the application-layer constants shared by the server
// handlers and the client adapter.
//
// Code* values are written into the "error" field of every failed API
// response; the client maps them back to typed errors. Msg* values are the
// human readable texts sent along with them.
package app

const (
	// CodeInvalidInput is returned when the request body cannot be decoded
	// or fails field validation.
	CodeInvalidInput = "INVALID_INPUT"

	// CodeDuplicateCode is returned when another non-deleted key already
	// carries the requested visible code.
	CodeDuplicateCode = "DUPLICATE_CODE"

	// CodeNotFound is returned for unknown keys, accounts and log entries.
	CodeNotFound = "NOT_FOUND"

	// CodeInvalidState is returned when a transition is not allowed from
	// the current key status (checked out twice, returned while available,
	// any change to a deleted key).
	CodeInvalidState = "INVALID_STATE"

	// CodeNotOverdue is returned when a reminder is requested for a
	// checkout that is not overdue.
	CodeNotOverdue = "NOT_OVERDUE"

	// CodeNoHolderPhone is returned when a reminder cannot be composed
	// because the holder left no phone number.
	CodeNoHolderPhone = "NO_HOLDER_PHONE"

	// CodeInvalidCredentials is returned when no account matches the
	// supplied username and password.
	CodeInvalidCredentials = "INVALID_CREDENTIALS"

	// CodeUnauthorized is returned when the bearer token is missing,
	// expired or invalid.
	CodeUnauthorized = "UNAUTHORIZED"

	// CodeForbidden is returned when the caller's role does not allow the
	// operation.
	CodeForbidden = "FORBIDDEN"

	// CodeStorage is returned when the change could not be persisted. The
	// change was not applied.
	CodeStorage = "STORAGE_ERROR"

	// CodeInternal is returned for every other server-side failure.
	CodeInternal = "INTERNAL_ERROR"
)

const (
	MsgInvalidDataProvided  = "invalid data provided"
	MsgInvalidLoginPassword = "invalid username/password"
	MsgInternalServerError  = "internal server error"
	MsgTokenIsExpired       = "token is expired or invalid"
	MsgNoTokenProvided      = "no token provided"
	MsgAccessDenied         = "access denied"
	MsgStorageFailed        = "the change could not be saved, nothing was modified"
)
