package worker

import "time"

// IntervalOf is exported for testing
func IntervalOf(w *DailyRotationWorker) time.Duration {
	return w.interval
}
