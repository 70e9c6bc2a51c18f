package worker

import (
	"context"
	"time"

	"github.com/secmon-lab/vatika/pkg/utils/logging"
)

// DefaultRotationInterval is how often the worker checks for a new calendar day
const DefaultRotationInterval = time.Hour

// DailyRotator advances the plant of the day. It must be a no-op when the
// plant of the day was already chosen today.
type DailyRotator interface {
	RotateDailyPlant(ctx context.Context) (bool, error)
}

// DailyRotationWorker periodically asks the plant store to rotate the plant
// of the day. The store itself guarantees at most one rotation per day, so
// the interval only bounds how late after midnight the rotation happens.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
type DailyRotationWorker struct {
	rotator  DailyRotator
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewDailyRotationWorker creates a new worker. A non-positive interval means
// DefaultRotationInterval.
func NewDailyRotationWorker(rotator DailyRotator, interval time.Duration) *DailyRotationWorker {
	if interval <= 0 {
		interval = DefaultRotationInterval
	}
	return &DailyRotationWorker{
		rotator:  rotator,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background rotation loop without blocking
func (w *DailyRotationWorker) Start(ctx context.Context) error {
	logging.Default().Info("Daily rotation worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *DailyRotationWorker) Stop() {
	logging.Default().Info("Daily rotation worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Daily rotation worker stopped")
}

func (w *DailyRotationWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	w.rotate(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.rotate(ctx)

		case <-w.stopCh:
			logging.Default().Info("Daily rotation worker received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("Daily rotation worker context cancelled")
			return
		}
	}
}

func (w *DailyRotationWorker) rotate(ctx context.Context) {
	rotated, err := w.rotator.RotateDailyPlant(ctx)
	if err != nil {
		logging.Default().Error("Daily plant rotation failed (will retry next interval)",
			"error", err.Error())
		return
	}
	if rotated {
		logging.Default().Info("Daily plant rotated")
	}
}
