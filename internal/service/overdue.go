package service

import (
	"time"

	"github.com/MKhiriev/go-key-keeper/models"
)

// DefaultOverdueThreshold is how long a checkout may last before it is
// flagged.
const DefaultOverdueThreshold = 48 * time.Hour

// DetectOverdue scans the newest-first log and returns, for every key that is
// still CHECKED_OUT, its latest checkout entry when more than threshold has
// elapsed since it. Results are newest first. Nothing is cached: the result
// is only valid for now.
func DetectOverdue(entries []models.LogEntry, keys []models.Key, now time.Time, threshold time.Duration) []models.OverdueCheckout {
	checkedOut := make(map[string]bool, len(keys))
	for _, key := range keys {
		checkedOut[key.ID] = key.Status == models.KeyStatusCheckedOut
	}

	seen := make(map[string]struct{})
	var overdue []models.OverdueCheckout
	for _, entry := range entries {
		if entry.Type != models.EventKeyCheckedOut {
			continue
		}
		if _, ok := seen[entry.KeyID]; ok {
			continue
		}
		seen[entry.KeyID] = struct{}{}

		if !checkedOut[entry.KeyID] {
			continue
		}
		if elapsed := now.Sub(entry.Date); elapsed > threshold {
			overdue = append(overdue, models.OverdueCheckout{Entry: entry, Elapsed: elapsed})
		}
	}

	return overdue
}
