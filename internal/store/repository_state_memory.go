package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-key-keeper/models"
)

// memoryStateRepository keeps the snapshot in process memory. The snapshot is
// stored encoded so callers never share slices with the repository.
type memoryStateRepository struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStateRepository returns an empty in-process [StateRepository].
func NewMemoryStateRepository() StateRepository {
	return &memoryStateRepository{}
}

func (r *memoryStateRepository) Load(ctx context.Context) (models.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var snapshot models.Snapshot
	if r.data == nil {
		return snapshot, nil
	}
	if err := json.Unmarshal(r.data, &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
	}

	return snapshot, nil
}

func (r *memoryStateRepository) Save(ctx context.Context, snapshot models.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	r.mu.Lock()
	r.data = data
	r.mu.Unlock()

	return nil
}

func (r *memoryStateRepository) Close() error {
	return nil
}
