package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/models"
)

// State owns the office data: keys, audit log and accounts, backed by a
// [store.StateRepository].
//
// A single lock guards everything. A mutation changes the in-memory data,
// persists the resulting snapshot and only then releases the lock; when the
// save fails the previous data is restored, so no reader ever sees a key
// change without its log entry or a change that was not stored.
type State struct {
	mu       sync.RWMutex
	keys     *KeyStore
	log      *AuditLog
	accounts []models.User

	repository store.StateRepository
	loaded     atomic.Bool

	subMu       sync.Mutex
	subscribers map[chan struct{}]struct{}

	logger *logger.Logger
}

// Tx is the mutable view handed to [State.Update] callbacks.
type Tx struct {
	Keys     *KeyStore
	Log      *AuditLog
	Accounts []models.User
}

// View is the read-only view handed to [State.Read] callbacks. Callers must
// not keep references to it after the callback returns.
type View struct {
	Keys     *KeyStore
	Log      *AuditLog
	Accounts []models.User
}

func NewState(repository store.StateRepository, logger *logger.Logger) *State {
	return &State{
		keys:        NewKeyStore(nil),
		log:         NewAuditLog(nil),
		repository:  repository,
		subscribers: make(map[chan struct{}]struct{}),
		logger:      logger,
	}
}

// Load replaces the in-memory data with the stored snapshot.
func (s *State) Load(ctx context.Context) error {
	snapshot, err := s.repository.Load(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*State.Load").Msg("error loading state")
		return fmt.Errorf("load state: %w", err)
	}

	s.mu.Lock()
	s.restore(snapshot)
	s.mu.Unlock()

	s.loaded.Store(true)
	s.logger.Info().
		Int("accounts", len(snapshot.Accounts)).
		Int("keys", len(snapshot.Keys)).
		Int("log_entries", len(snapshot.AuditLog)).
		Msg("state loaded")

	return nil
}

// Loaded reports whether [State.Load] has succeeded.
func (s *State) Loaded() bool {
	return s.loaded.Load()
}

// IsEmpty reports whether nothing is stored yet.
func (s *State) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.keys.Len() == 0 && s.log.Len() == 0 && len(s.accounts) == 0
}

// Read runs fn under the read lock.
func (s *State) Read(fn func(view View)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(View{Keys: s.keys, Log: s.log, Accounts: s.accounts})
}

// Update runs fn under the write lock and persists the result. If fn or the
// save fails, every change fn made is undone and the error is returned.
func (s *State) Update(ctx context.Context, fn func(tx *Tx) error) error {
	if !s.Loaded() {
		return ErrStateNotLoaded
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.snapshot()

	tx := &Tx{Keys: s.keys, Log: s.log, Accounts: s.accounts}
	if err := fn(tx); err != nil {
		s.restore(before)
		return err
	}
	s.accounts = tx.Accounts

	if err := s.repository.Save(ctx, s.snapshot()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*State.Update").Msg("error saving state, changes reverted")
		s.restore(before)
		return fmt.Errorf("%w: %w", ErrPersistState, err)
	}

	s.notify()
	return nil
}

// Snapshot returns a copy of the current data in persisted form.
func (s *State) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot()
}

// Subscribe returns a channel that receives a value after committed changes.
// Notifications are coalesced: a slow subscriber sees at least one value per
// burst. The returned function unsubscribes and closes the channel.
func (s *State) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	s.subMu.Lock()
	s.subscribers[ch] = struct{}{}
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subscribers, ch)
			s.subMu.Unlock()
			close(ch)
		})
	}
}

// Close releases the repository.
func (s *State) Close() error {
	return s.repository.Close()
}

func (s *State) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// snapshot must be called with the lock held.
func (s *State) snapshot() models.Snapshot {
	return models.Snapshot{
		Accounts: slices.Clone(s.accounts),
		Keys:     s.keys.All(),
		AuditLog: s.log.Entries(),
	}
}

// restore must be called with the write lock held.
func (s *State) restore(snapshot models.Snapshot) {
	s.accounts = slices.Clone(snapshot.Accounts)
	s.keys = NewKeyStore(snapshot.Keys)
	s.log = NewAuditLog(snapshot.AuditLog)
}
