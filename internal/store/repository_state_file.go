package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

// fileStateRepository keeps the snapshot in one pretty-printed JSON document.
// Save writes a temporary file next to the target and renames it over the
// target, so a crash never leaves a half written state.
type fileStateRepository struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileStateRepository returns a [StateRepository] backed by the JSON
// document at path. The file is created on the first Save.
func NewFileStateRepository(path string, logger *logger.Logger) StateRepository {
	logger.Debug().Str("path", path).Msg("creating file state repository")
	return &fileStateRepository{path: path, logger: logger}
}

func (r *fileStateRepository) Load(ctx context.Context) (models.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Snapshot{}, nil
		}
		return models.Snapshot{}, fmt.Errorf("read state file: %w", err)
	}

	var snapshot models.Snapshot
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: decode state file: %w", ErrCorruptedRecord, err)
	}

	return snapshot, nil
}

func (r *fileStateRepository) Save(ctx context.Context, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write state file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close state file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod state file: %w", err)
	}

	if err = os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		log.Err(err).Str("func", "*fileStateRepository.Save").Str("path", r.path).Msg("error replacing state file")
		return fmt.Errorf("replace state file: %w", err)
	}

	return nil
}

func (r *fileStateRepository) Close() error {
	return nil
}
