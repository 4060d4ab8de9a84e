package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
)

func TestRefreshWorker_CallsRefreshOnTicks(t *testing.T) {
	var calls atomic.Int32
	w := NewRefreshWorker(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, 5*time.Millisecond, logger.Nop())

	w.Run(context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)

	w.Stop()
	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no refresh after Stop")
}

func TestRefreshWorker_ErrorsDoNotStopTheLoop(t *testing.T) {
	var calls atomic.Int32
	w := NewRefreshWorker(func(ctx context.Context) error {
		calls.Add(1)
		return errors.New("server unavailable")
	}, 5*time.Millisecond, logger.Nop())

	w.Run(context.Background())
	defer w.Stop()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestRefreshWorker_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewRefreshWorker(func(ctx context.Context) error { return nil }, time.Hour, logger.Nop())

	w.Run(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after the context was cancelled")
	}
}

func TestRefreshWorker_RunTwiceKeepsOneLoop(t *testing.T) {
	var calls atomic.Int32
	w := NewRefreshWorker(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, 5*time.Millisecond, logger.Nop())

	w.Run(context.Background())
	w.Run(context.Background())
	defer w.Stop()

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, time.Millisecond)
}

func TestRefreshWorker_DefaultInterval(t *testing.T) {
	w := NewRefreshWorker(func(ctx context.Context) error { return nil }, 0, logger.Nop())
	assert.Equal(t, DefaultRefreshInterval, w.(*refreshWorker).interval)

	// Stop on a worker that never ran
	w.Stop()
}
