package metrics

import (
	"context"
	"time"
)

type pollFunc = func(ctx context.Context) error

// RecordPollerDuration wraps a poll function so every cycle observes its
// duration and outcome under the given job label.
func RecordPollerDuration(job string, f pollFunc) pollFunc {
	return func(ctx context.Context) error {
		start := time.Now()
		err := f(ctx)

		status := Success
		if err != nil {
			status = Error
		}
		pollerDurationHistogram.WithLabelValues(job, status.String()).Observe(time.Since(start).Seconds())

		return err
	}
}
