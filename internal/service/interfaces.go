package service

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

// KeyRegistry exposes the key lifecycle transitions and the key queries.
type KeyRegistry interface {
	CreateKey(ctx context.Context, code, address string, color models.KeyColor, actor string) (models.Key, error)
	RenameKey(ctx context.Context, keyID, newCode string) error
	CheckoutKey(ctx context.Context, keyID, holderName, holderPhone string) error
	ReturnKey(ctx context.Context, keyID, returnerName string) error
	DeleteKey(ctx context.Context, keyID, reason, actorName string) error

	GetKey(ctx context.Context, keyID string) (models.Key, error)
	ListActiveKeys(ctx context.Context) []models.Key
	ListKeys(ctx context.Context) []models.Key
	KeyHistory(ctx context.Context, keyID string) ([]models.CheckoutRecord, error)
	SuggestCode(ctx context.Context) (string, error)
}

// KeyRegistryWrapper decorates a KeyRegistry with additional behavior such
// as validation.
type KeyRegistryWrapper interface {
	Wrap(KeyRegistry) KeyRegistry
}

// AuditService reads the audit log and the views derived from it.
type AuditService interface {
	Entries(ctx context.Context) []models.AuditLogView
	Overdue(ctx context.Context) []models.OverdueCheckout
	Reminder(ctx context.Context, entryID string) (models.Reminder, error)
	Export(ctx context.Context) (models.AuditExport, error)
}

// UserDirectory manages office accounts.
type UserDirectory interface {
	AddAccount(ctx context.Context, username, secret, phone string, role models.Role) (models.User, error)
	Authenticate(ctx context.Context, username, secret string) (models.User, error)
	GetAccount(ctx context.Context, id string) (models.User, error)
	ListAccounts(ctx context.Context) []models.User
}

type AuthService interface {
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
