package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
)

// DefaultRefreshInterval is used when the configured interval is not positive.
const DefaultRefreshInterval = 30 * time.Second

type refreshWorker struct {
	loop

	refresh  RefreshFunc
	interval time.Duration
	logger   *logger.Logger
}

// NewRefreshWorker creates a worker that calls refresh every interval. The
// worker is idle until Run is called.
func NewRefreshWorker(refresh RefreshFunc, interval time.Duration, logger *logger.Logger) Worker {
	return &refreshWorker{
		refresh:  refresh,
		interval: intervalOrDefault(interval, DefaultRefreshInterval),
		logger:   logger,
	}
}

func (w *refreshWorker) Run(ctx context.Context) {
	w.logger.Debug().Dur("interval", w.interval).Msg("starting refresh worker")

	w.start(ctx, func(ctx context.Context) {
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := w.refresh(ctx); err != nil {
					w.logger.Err(err).Str("func", "*refreshWorker.Run").Msg("refresh failed")
				}
			}
		}
	})
}

func (w *refreshWorker) Stop() {
	w.stop()
}
