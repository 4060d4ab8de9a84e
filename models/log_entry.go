package models

import "time"

// EventType is the kind of lifecycle event recorded in the audit log.
type EventType string

const (
	EventKeyCreated    EventType = "KEY_CREATED"
	EventKeyCheckedOut EventType = "KEY_CHECKED_OUT"
	EventKeyReturned   EventType = "KEY_RETURNED"
	EventKeyDeleted    EventType = "KEY_DELETED"
)

var eventLabels = map[EventType]string{
	EventKeyCreated:    "Llave Creada",
	EventKeyCheckedOut: "Llave Retirada",
	EventKeyReturned:   "Llave Devuelta",
	EventKeyDeleted:    "Llave Dada de Baja",
}

// Label returns the human readable name of the event shown to office staff.
func (e EventType) Label() string {
	if label, ok := eventLabels[e]; ok {
		return label
	}
	return string(e)
}

// LogDetails is the payload attached to every audit log entry.
type LogDetails struct {
	Actor      string `json:"actor"`
	Phone      string `json:"phone,omitempty"`
	Reason     string `json:"reason,omitempty"`
	KeyAddress string `json:"keyAddress"`
}

// LogEntry is an immutable audit record. KeyVisibleCode holds the code the key
// had when the event happened, not its current one.
type LogEntry struct {
	ID             string     `json:"id"`
	Date           time.Time  `json:"date"`
	Type           EventType  `json:"type"`
	KeyID          string     `json:"keyId"`
	KeyVisibleCode string     `json:"keyVisibleCode"`
	Details        LogDetails `json:"details"`
}

// TableName returns the name of the database table
// associated with the LogEntry model.
func (e LogEntry) TableName() string {
	return "audit_log"
}
