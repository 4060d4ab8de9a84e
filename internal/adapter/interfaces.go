// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-key-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Failed calls return an [*APIError] that unwraps to one of the status
// sentinels in errors.go (e.g. [ErrConflict] for 409, [ErrUnauthorized] for
// 401) and carries the machine readable code sent by the server.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-key-keeper server. Implementations are responsible for serialisation,
// authentication header management and mapping transport-level errors.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates against the server. On success the returned bearer
	// token is stored via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	// Me returns the account the current token was issued for.
	Me(ctx context.Context) (models.User, error)

	// Version returns the server application version.
	Version(ctx context.Context) (string, error)

	// ListKeys returns active keys, or every key including deleted ones when
	// all is set (admin only).
	ListKeys(ctx context.Context, all bool) ([]models.Key, error)
	GetKey(ctx context.Context, keyID string) (models.Key, error)
	KeyHistory(ctx context.Context, keyID string) ([]models.CheckoutRecord, error)
	SuggestCode(ctx context.Context) (string, error)

	CreateKey(ctx context.Context, request models.CreateKeyRequest) (models.Key, error)
	RenameKey(ctx context.Context, keyID string, request models.RenameKeyRequest) (models.Key, error)
	CheckoutKey(ctx context.Context, keyID string, request models.CheckoutRequest) (models.Key, error)
	ReturnKey(ctx context.Context, keyID string) (models.Key, error)
	DeleteKey(ctx context.Context, keyID string, request models.DeleteKeyRequest) (models.Key, error)

	// AuditLog returns the newest-first log with overdue flags.
	AuditLog(ctx context.Context) ([]models.AuditLogView, error)
	Overdue(ctx context.Context) ([]models.OverdueCheckout, error)
	Reminder(ctx context.Context, entryID string) (models.Reminder, error)

	// ExportAuditLog downloads the log document together with the file name
	// suggested by the server.
	ExportAuditLog(ctx context.Context) (models.AuditExport, error)

	ListAccounts(ctx context.Context) ([]models.User, error)
	AddAccount(ctx context.Context, request models.AddAccountRequest) (models.User, error)
}
