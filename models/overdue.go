package models

import "time"

// Reminder is a composed return request for the holder of an overdue key.
// It is never delivered or tracked by the system.
type Reminder struct {
	// Phone is the holder phone reduced to digits only.
	Phone   string `json:"phone"`
	Message string `json:"message"`
	// URL opens a chat with the holder with Message pre-filled.
	URL string `json:"url"`
}

// OverdueCheckout is a derived view over the audit log. It is recomputed on
// every read and never persisted.
type OverdueCheckout struct {
	Entry    LogEntry      `json:"entry"`
	Elapsed  time.Duration `json:"elapsed"`
	Reminder *Reminder     `json:"reminder,omitempty"`
}

// AuditExport is a downloadable copy of the whole audit log.
type AuditExport struct {
	FileName string
	Content  []byte
}
