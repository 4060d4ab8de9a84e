package service

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

// ClientAuthService manages the single session of the client: login, restore
// on start and logout.
type ClientAuthService interface {
	// RestoreSession loads the saved session and checks its token against the
	// server. A session whose token was rejected is cleared and
	// ErrTokenIsExpiredOrInvalid is returned; with no saved session the error
	// is store.ErrLocalSessionNotFound.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Login authenticates against the server and saves the new session.
	Login(ctx context.Context, username, password string) (models.Session, error)

	// Logout forgets the token and removes the saved session.
	Logout(ctx context.Context) error
}

// ClientKeyService exposes key operations to the TUI. Inputs are validated
// locally before they are sent.
type ClientKeyService interface {
	ListKeys(ctx context.Context, all bool) ([]models.Key, error)
	GetKey(ctx context.Context, keyID string) (models.Key, error)
	KeyHistory(ctx context.Context, keyID string) ([]models.CheckoutRecord, error)
	SuggestCode(ctx context.Context) (string, error)

	CreateKey(ctx context.Context, code, address string, color models.KeyColor) (models.Key, error)
	RenameKey(ctx context.Context, keyID, code string) (models.Key, error)

	// CheckoutSelf hands the key to the logged-in account.
	CheckoutSelf(ctx context.Context, keyID string) (models.Key, error)
	// CheckoutOther hands the key to a third party. Name and phone are
	// mandatory.
	CheckoutOther(ctx context.Context, keyID, holderName, holderPhone string) (models.Key, error)
	ReturnKey(ctx context.Context, keyID string) (models.Key, error)
	DeleteKey(ctx context.Context, keyID, reason string) (models.Key, error)
}

// ClientAuditService exposes the audit log, overdue checkouts and the export.
type ClientAuditService interface {
	Entries(ctx context.Context) ([]models.AuditLogView, error)
	Overdue(ctx context.Context) ([]models.OverdueCheckout, error)
	Reminder(ctx context.Context, entryID string) (models.Reminder, error)

	// Export downloads the log and writes it into dir under the file name
	// chosen by the server. It returns the written path.
	Export(ctx context.Context, dir string) (string, error)
}

// ClientAccountService manages staff accounts (admin only on the server).
type ClientAccountService interface {
	ListAccounts(ctx context.Context) ([]models.User, error)
	AddAccount(ctx context.Context, request models.AddAccountRequest) (models.User, error)
}
