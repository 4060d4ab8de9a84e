package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
)

// DefaultOverdueReportInterval is used when the configured interval is not
// positive.
const DefaultOverdueReportInterval = time.Hour

// overdueReporter checks the overdue checkouts after every state change and
// on a ticker, so checkouts that cross the threshold while nothing changes
// are found too. Each overdue checkout is logged once. It never writes
// anything.
type overdueReporter struct {
	loop

	source   OverdueSource
	notifier ChangeNotifier
	interval time.Duration
	logger   *logger.Logger

	// entry ids already logged, owned by the run goroutine
	reported map[string]struct{}
}

func NewOverdueReporter(source OverdueSource, notifier ChangeNotifier, interval time.Duration, logger *logger.Logger) Worker {
	return &overdueReporter{
		source:   source,
		notifier: notifier,
		interval: intervalOrDefault(interval, DefaultOverdueReportInterval),
		logger:   logger,
		reported: map[string]struct{}{},
	}
}

func (w *overdueReporter) Run(ctx context.Context) {
	w.logger.Debug().Dur("interval", w.interval).Msg("starting overdue reporter")

	w.start(ctx, func(ctx context.Context) {
		changes, unsubscribe := w.notifier.Subscribe()
		defer unsubscribe()

		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.report(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				w.report(ctx)
			case <-t.C:
				w.report(ctx)
			}
		}
	})
}

func (w *overdueReporter) Stop() {
	w.stop()
}

// report logs the checkouts that became overdue since the previous call and
// returns how many it logged. Returned keys drop out of the reported set.
func (w *overdueReporter) report(ctx context.Context) int {
	overdue := w.source.Overdue(ctx)

	current := make(map[string]struct{}, len(overdue))
	logged := 0
	for _, checkout := range overdue {
		current[checkout.Entry.ID] = struct{}{}
		if _, seen := w.reported[checkout.Entry.ID]; seen {
			continue
		}

		w.logger.Warn().
			Str("entry_id", checkout.Entry.ID).
			Str("key_id", checkout.Entry.KeyID).
			Str("code", checkout.Entry.KeyVisibleCode).
			Str("holder", checkout.Entry.Details.Actor).
			Dur("elapsed", checkout.Elapsed).
			Msg("key is overdue")
		logged++
	}
	w.reported = current

	return logged
}
