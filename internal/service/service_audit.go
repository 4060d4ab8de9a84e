package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

// auditService serves the audit log and the overdue view computed from it
// on every call.
type auditService struct {
	state     *State
	reminders *ReminderComposer
	clock     Clock
	threshold time.Duration

	logger *logger.Logger
}

func NewAuditService(state *State, reminders *ReminderComposer, clock Clock, threshold time.Duration, logger *logger.Logger) AuditService {
	if threshold <= 0 {
		threshold = DefaultOverdueThreshold
	}
	return &auditService{
		state:     state,
		reminders: reminders,
		clock:     clock,
		threshold: threshold,
		logger:    logger,
	}
}

func (s *auditService) read() ([]models.LogEntry, []models.Key) {
	var (
		entries []models.LogEntry
		keys    []models.Key
	)
	s.state.Read(func(view View) {
		entries = view.Log.Entries()
		keys = view.Keys.All()
	})
	return entries, keys
}

// Entries returns the newest-first log with each row flagged when it is the
// overdue checkout of its key.
func (s *auditService) Entries(ctx context.Context) []models.AuditLogView {
	entries, keys := s.read()

	overdue := make(map[string]struct{})
	for _, o := range DetectOverdue(entries, keys, s.clock(), s.threshold) {
		overdue[o.Entry.ID] = struct{}{}
	}

	views := make([]models.AuditLogView, len(entries))
	for i, entry := range entries {
		_, flagged := overdue[entry.ID]
		views[i] = models.AuditLogView{LogEntry: entry, Overdue: flagged}
	}

	return views
}

// Overdue lists overdue checkouts with a reminder for holders that left a
// phone number.
func (s *auditService) Overdue(ctx context.Context) []models.OverdueCheckout {
	entries, keys := s.read()

	overdue := DetectOverdue(entries, keys, s.clock(), s.threshold)
	for i := range overdue {
		reminder, err := s.reminders.Compose(overdue[i].Entry)
		if err != nil {
			continue
		}
		overdue[i].Reminder = &reminder
	}

	return overdue
}

// Reminder composes the reminder for one overdue checkout entry.
func (s *auditService) Reminder(ctx context.Context, entryID string) (models.Reminder, error) {
	entries, keys := s.read()

	found := false
	for _, entry := range entries {
		if entry.ID == entryID {
			found = true
			break
		}
	}
	if !found {
		return models.Reminder{}, fmt.Errorf("reminder for %s: %w", entryID, ErrLogEntryNotFound)
	}

	for _, o := range DetectOverdue(entries, keys, s.clock(), s.threshold) {
		if o.Entry.ID != entryID {
			continue
		}
		reminder, err := s.reminders.Compose(o.Entry)
		if err != nil {
			return models.Reminder{}, fmt.Errorf("reminder for %s: %w", entryID, err)
		}
		return reminder, nil
	}

	return models.Reminder{}, fmt.Errorf("reminder for %s: %w", entryID, ErrNotOverdue)
}

// Export returns the whole newest-first log as a dated JSON document.
func (s *auditService) Export(ctx context.Context) (models.AuditExport, error) {
	entries, _ := s.read()

	export, err := ExportAuditLog(entries, s.clock())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*auditService.Export").Msg("error exporting audit log")
		return models.AuditExport{}, fmt.Errorf("export audit log: %w", err)
	}

	return export, nil
}
