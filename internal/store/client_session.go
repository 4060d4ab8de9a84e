package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-key-keeper/models"
)

// localSessionStore keeps the client session in a small JSON file, or only in
// memory when the path is empty or ":memory:".
type localSessionStore struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	session *models.Session
}

// NewLocalSessionStore returns a [SessionStore] backed by the file at path.
func NewLocalSessionStore(path string) (SessionStore, error) {
	inMemory := path == "" || path == ":memory:" || path == "memory"
	s := &localSessionStore{path: path, inMemory: inMemory}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *localSessionStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil {
		return fmt.Errorf("%w: decode session file: %w", ErrCorruptedRecord, err)
	}
	if session.Token != "" {
		s.session = &session
	}

	return nil
}

func (s *localSessionStore) Load() (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return models.Session{}, ErrLocalSessionNotFound
	}
	return *s.session, nil
}

func (s *localSessionStore) Save(session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.User = session.User.Public()
	s.session = &session
	return s.persist()
}

func (s *localSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	if s.inMemory {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *localSessionStore) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}
