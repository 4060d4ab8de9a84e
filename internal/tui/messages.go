package tui

import (
	"github.com/MKhiriev/go-key-keeper/models"
)

type loggedInMsg struct {
	session models.Session
	err     error
}

type loggedOutMsg struct {
	err error
}

type keysLoadedMsg struct {
	keys []models.Key
	err  error
}

type historyLoadedMsg struct {
	keyID   string
	history []models.CheckoutRecord
	err     error
}

type suggestedCodeMsg struct {
	code string
	err  error
}

// keySavedMsg answers every key transition. status is shown on the key list.
type keySavedMsg struct {
	key    models.Key
	status string
	err    error
}

type auditLoadedMsg struct {
	entries []models.AuditLogView
	overdue []models.OverdueCheckout
	err     error
}

type exportedMsg struct {
	path string
	err  error
}

type accountsLoadedMsg struct {
	accounts []models.User
	err      error
}

type accountSavedMsg struct {
	account models.User
	err     error
}

// failedMsg carries an error of a command that has no result of its own.
type failedMsg struct {
	err error
}

// refreshMsg is sent by the refresh worker.
type refreshMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct{}
