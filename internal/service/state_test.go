package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/mock"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type seqIDs struct {
	n atomic.Int64
}

func (g *seqIDs) Generate() string {
	return fmt.Sprintf("id-%d", g.n.Add(1))
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newLoadedState(t *testing.T, repository store.StateRepository) *State {
	t.Helper()

	state := NewState(repository, logger.Nop())
	require.NoError(t, state.Load(context.Background()))
	return state
}

// ─────────────────────────────────────────────
// State
// ─────────────────────────────────────────────

func TestState_UpdateBeforeLoad(t *testing.T) {
	state := NewState(store.NewMemoryStateRepository(), logger.Nop())

	err := state.Update(context.Background(), func(tx *Tx) error { return nil })
	assert.ErrorIs(t, err, ErrStateNotLoaded)
	assert.False(t, state.Loaded())
}

func TestState_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repository := mock.NewMockStateRepository(ctrl)

	boom := errors.New("unreachable")
	repository.EXPECT().Load(gomock.Any()).Return(models.Snapshot{}, boom)

	state := NewState(repository, logger.Nop())
	err := state.Load(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.False(t, state.Loaded())
}

func TestState_SaveFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	repository := mock.NewMockStateRepository(ctrl)
	ctx := context.Background()

	repository.EXPECT().Load(gomock.Any()).Return(models.Snapshot{}, nil)
	gomock.InOrder(
		repository.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
		repository.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full")),
	)

	state := newLoadedState(t, repository)
	registry := NewKeyRegistry(state, &seqIDs{}, newTestClock().Now, logger.Nop())

	key, err := registry.CreateKey(ctx, "A1", "Main St 1", models.KeyColorGreen, "admin")
	require.NoError(t, err)

	err = registry.CheckoutKey(ctx, key.ID, "Jane", "5491122223333")
	require.ErrorIs(t, err, ErrPersistState)

	// neither the key change nor the log entry survived
	got, err := registry.GetKey(ctx, key.ID)
	require.NoError(t, err)
	assert.Equal(t, models.KeyStatusAvailable, got.Status)
	assert.Nil(t, got.CheckoutLog)
	assert.Empty(t, got.History)

	snapshot := state.Snapshot()
	require.Len(t, snapshot.AuditLog, 1)
	assert.Equal(t, models.EventKeyCreated, snapshot.AuditLog[0].Type)
}

func TestState_CallbackErrorRollsBack(t *testing.T) {
	state := newLoadedState(t, store.NewMemoryStateRepository())

	err := state.Update(context.Background(), func(tx *Tx) error {
		tx.Keys.Put(models.Key{ID: "k1", VisibleCode: "A1", Status: models.KeyStatusAvailable})
		tx.Accounts = append(tx.Accounts, models.User{ID: "u1"})
		return ErrDuplicateCode
	})
	require.ErrorIs(t, err, ErrDuplicateCode)

	assert.True(t, state.IsEmpty())
}

func TestState_PersistsAcrossReload(t *testing.T) {
	repository := store.NewMemoryStateRepository()
	ctx := context.Background()

	state := newLoadedState(t, repository)
	registry := NewKeyRegistry(state, &seqIDs{}, newTestClock().Now, logger.Nop())
	key, err := registry.CreateKey(ctx, "B3", "Salta 81", models.KeyColorBlue, "admin")
	require.NoError(t, err)
	require.NoError(t, registry.CheckoutKey(ctx, key.ID, "Jane", ""))

	reloaded := newLoadedState(t, repository)
	assert.Equal(t, state.Snapshot(), reloaded.Snapshot())
}

func TestState_Subscribe(t *testing.T) {
	state := newLoadedState(t, store.NewMemoryStateRepository())
	ctx := context.Background()

	updates, unsubscribe := state.Subscribe()

	// two commits before anyone reads are coalesced into one notification
	require.NoError(t, state.Update(ctx, func(tx *Tx) error { return nil }))
	require.NoError(t, state.Update(ctx, func(tx *Tx) error { return nil }))

	select {
	case <-updates:
	case <-time.After(time.Second):
		t.Fatal("no notification after commit")
	}
	select {
	case <-updates:
		t.Fatal("notifications were not coalesced")
	default:
	}

	// failed updates do not notify
	_ = state.Update(ctx, func(tx *Tx) error { return ErrKeyNotFound })
	select {
	case <-updates:
		t.Fatal("notified about a failed update")
	default:
	}

	unsubscribe()
	unsubscribe()
	_, open := <-updates
	assert.False(t, open)
}
