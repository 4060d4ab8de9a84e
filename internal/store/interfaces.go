package store

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StateRepository loads and saves the complete office state. Save replaces
// the stored snapshot as one unit: either every record is written or none.
type StateRepository interface {
	Load(ctx context.Context) (models.Snapshot, error)
	Save(ctx context.Context, snapshot models.Snapshot) error
	Close() error
}

// KeyValueStore is a flat byte store addressed by record name.
// GetMany omits names that were never set. SetMany is atomic.
type KeyValueStore interface {
	GetMany(ctx context.Context, names ...string) (map[string][]byte, error)
	SetMany(ctx context.Context, records map[string][]byte) error
	Close() error
}

// SessionStore keeps the single currently authenticated account on the client.
type SessionStore interface {
	Load() (models.Session, error)
	Save(session models.Session) error
	Clear() error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
