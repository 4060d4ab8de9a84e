// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the work happens in a
// goroutine that lives until ctx is cancelled or Stop is called. Stop blocks
// until that goroutine has exited and is a no-op for a worker that is not
// running.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    // start background processing
//	}
//
//	func (w *MyWorker) Stop() {}
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// RefreshFunc re-reads whatever the client shows on screen.
type RefreshFunc func(ctx context.Context) error

// OverdueSource computes the current overdue checkouts.
type OverdueSource interface {
	Overdue(ctx context.Context) []models.OverdueCheckout
}

// ChangeNotifier delivers a value after every committed state change.
type ChangeNotifier interface {
	Subscribe() (<-chan struct{}, func())
}
