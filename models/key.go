package models

import "time"

// KeyColor is the color tag of a key ring. Fixed at creation.
type KeyColor string

const (
	KeyColorGreen  KeyColor = "GREEN"
	KeyColorBlue   KeyColor = "BLUE"
	KeyColorYellow KeyColor = "YELLOW"
	KeyColorRed    KeyColor = "RED"
)

// KeyColors lists every accepted color in display order.
var KeyColors = []KeyColor{KeyColorGreen, KeyColorBlue, KeyColorYellow, KeyColorRed}

// Valid reports whether c is one of [KeyColors].
func (c KeyColor) Valid() bool {
	for _, known := range KeyColors {
		if c == known {
			return true
		}
	}
	return false
}

// KeyStatus is the lifecycle state of a key. DELETED is terminal.
type KeyStatus string

const (
	KeyStatusAvailable  KeyStatus = "AVAILABLE"
	KeyStatusCheckedOut KeyStatus = "CHECKED_OUT"
	KeyStatusDeleted    KeyStatus = "DELETED"
)

// CheckoutRecord describes one instance of a key being out of the office.
type CheckoutRecord struct {
	PersonName  string    `json:"personName"`
	PersonPhone string    `json:"personPhone,omitempty"`
	Date        time.Time `json:"date"`
}

// DeletionRecord is attached exactly once, when a key is deleted.
type DeletionRecord struct {
	Reason     string    `json:"reason"`
	PersonName string    `json:"personName"`
	Date       time.Time `json:"date"`
}

// Key is a physical property key tracked by the office.
//
// CheckoutLog is present iff Status is CHECKED_OUT, DeletionLog is present iff
// Status is DELETED. History keeps every checkout ever made, oldest first.
type Key struct {
	ID          string           `json:"id"`
	VisibleCode string           `json:"visibleCode"`
	Color       KeyColor         `json:"color"`
	Address     string           `json:"address"`
	Status      KeyStatus        `json:"status"`
	CheckoutLog *CheckoutRecord  `json:"checkoutLog,omitempty"`
	DeletionLog *DeletionRecord  `json:"deletionLog,omitempty"`
	History     []CheckoutRecord `json:"history"`
}

// IsActive reports whether the key is shown in active listings.
func (k Key) IsActive() bool {
	return k.Status != KeyStatusDeleted
}

// Clone returns a deep copy of k so callers cannot alias internal state.
func (k Key) Clone() Key {
	if k.CheckoutLog != nil {
		checkout := *k.CheckoutLog
		k.CheckoutLog = &checkout
	}
	if k.DeletionLog != nil {
		deletion := *k.DeletionLog
		k.DeletionLog = &deletion
	}
	history := make([]CheckoutRecord, len(k.History))
	copy(history, k.History)
	k.History = history

	return k
}

// TableName returns the name of the database table
// associated with the Key model.
func (k Key) TableName() string {
	return "keys"
}
