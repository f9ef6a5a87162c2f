package utils

import (
	"context"
	"time"
)

// newTimer returns the expiry channel and a stop function for a timer firing after d.
var newTimer = func(d time.Duration) (<-chan time.Time, func() bool) {
	t := time.NewTimer(d)
	return t.C, t.Stop
}

// WaitFor blocks for d or until ctx is done. The timer is stopped when ctx
// wins.
func WaitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	expired, stop := newTimer(d)
	defer stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-expired:
		return nil
	}
}

// Backoff returns the delay before retry attempt n (1-based), doubling from
// base and capped at limit.
func Backoff(n int, base, limit time.Duration) time.Duration {
	if n <= 1 {
		return min(base, limit)
	}

	d := base
	for i := 1; i < n; i++ {
		d *= 2
		if d >= limit {
			return limit
		}
	}
	return d
}
