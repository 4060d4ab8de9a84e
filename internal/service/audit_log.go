package service

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-key-keeper/models"
)

const exportFileDateLayout = "2006-01-02"

// AuditLog is the append-only sequence of lifecycle events. Entries are
// kept oldest first; every reader gets the canonical newest-first order.
// Like [KeyStore] it relies on [State] for synchronization.
type AuditLog struct {
	entries []models.LogEntry
}

// NewAuditLog restores a log from its newest-first persisted form.
func NewAuditLog(newestFirst []models.LogEntry) *AuditLog {
	entries := slices.Clone(newestFirst)
	slices.Reverse(entries)
	return &AuditLog{entries: entries}
}

// Append adds entry as the newest event.
func (l *AuditLog) Append(entry models.LogEntry) {
	l.entries = append(l.entries, entry)
}

// Entries returns a newest-first copy of the log.
func (l *AuditLog) Entries() []models.LogEntry {
	entries := make([]models.LogEntry, len(l.entries))
	for i, entry := range l.entries {
		entries[len(l.entries)-1-i] = entry
	}
	return entries
}

// Find returns the entry with id.
func (l *AuditLog) Find(id string) (models.LogEntry, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].ID == id {
			return l.entries[i], true
		}
	}
	return models.LogEntry{}, false
}

func (l *AuditLog) Len() int {
	return len(l.entries)
}

// ExportAuditLog serializes newest-first entries verbatim as an indented
// JSON array, named after the export date.
func ExportAuditLog(entries []models.LogEntry, now time.Time) (models.AuditExport, error) {
	if entries == nil {
		entries = []models.LogEntry{}
	}

	content, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return models.AuditExport{}, fmt.Errorf("encode audit log: %w", err)
	}

	return models.AuditExport{
		FileName: "historial_llaves_" + now.UTC().Format(exportFileDateLayout) + ".json",
		Content:  content,
	}, nil
}

// ParseAuditLogExport reads back a document produced by [ExportAuditLog].
func ParseAuditLogExport(content []byte) ([]models.LogEntry, error) {
	var entries []models.LogEntry
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("decode audit log: %w", err)
	}
	return entries, nil
}
