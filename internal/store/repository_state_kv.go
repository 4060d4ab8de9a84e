package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

// Record names of the three independent persisted collections.
const (
	RecordAccounts = "app_users"
	RecordKeys     = "app_keys"
	RecordAuditLog = "app_auditLog"
)

// kvStateRepository stores each collection of the snapshot as its own JSON
// record in a [KeyValueStore].
type kvStateRepository struct {
	kv     KeyValueStore
	prefix string
	logger *logger.Logger
}

// NewKeyValueStateRepository returns a [StateRepository] over kv. Every
// record name is prefixed with prefix.
func NewKeyValueStateRepository(kv KeyValueStore, prefix string, logger *logger.Logger) StateRepository {
	logger.Debug().Str("prefix", prefix).Msg("creating key-value state repository")
	return &kvStateRepository{kv: kv, prefix: prefix, logger: logger}
}

func (r *kvStateRepository) name(record string) string {
	return r.prefix + record
}

func (r *kvStateRepository) Load(ctx context.Context) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	records, err := r.kv.GetMany(ctx, r.name(RecordAccounts), r.name(RecordKeys), r.name(RecordAuditLog))
	if err != nil {
		log.Err(err).Str("func", "*kvStateRepository.Load").Msg("error reading records")
		return models.Snapshot{}, fmt.Errorf("read records: %w", err)
	}

	var snapshot models.Snapshot
	if err = decodeRecord(records, r.name(RecordAccounts), &snapshot.Accounts); err != nil {
		return models.Snapshot{}, err
	}
	if err = decodeRecord(records, r.name(RecordKeys), &snapshot.Keys); err != nil {
		return models.Snapshot{}, err
	}
	if err = decodeRecord(records, r.name(RecordAuditLog), &snapshot.AuditLog); err != nil {
		return models.Snapshot{}, err
	}

	return snapshot, nil
}

func (r *kvStateRepository) Save(ctx context.Context, snapshot models.Snapshot) error {
	records := make(map[string][]byte, 3)

	for name, value := range map[string]any{
		RecordAccounts: nonNil(snapshot.Accounts),
		RecordKeys:     nonNil(snapshot.Keys),
		RecordAuditLog: nonNil(snapshot.AuditLog),
	} {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		records[r.name(name)] = data
	}

	if err := r.kv.SetMany(ctx, records); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*kvStateRepository.Save").Msg("error writing records")
		return fmt.Errorf("write records: %w", err)
	}

	return nil
}

func (r *kvStateRepository) Close() error {
	return r.kv.Close()
}

func decodeRecord[T any](records map[string][]byte, name string, dst *[]T) error {
	data, ok := records[name]
	if !ok || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorruptedRecord, name, err)
	}
	return nil
}

// nonNil makes an empty collection encode as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
