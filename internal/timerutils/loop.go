package timerutils

import (
	"context"
	"time"
)

// Loop calls f right away and then once every interval until ctx is done.
// When f fails, the next call is delayed by an exponential backoff starting at
// minBackoff, but never beyond the next regular interval.
// A positive duration returned by f shortens the wait until the next call.
func Loop(
	ctx context.Context,
	minBackoff time.Duration,
	interval time.Duration,
	f func(ctx context.Context) (time.Duration, error),
	deferredFunc ...func(),
) {
	defer func() {
		for _, df := range deferredFunc {
			df()
		}
	}()
	interval = max(interval, time.Millisecond)
	minBackoff = max(minBackoff, time.Millisecond)

	var (
		timer, drained = NewTimer()
		backoff        = NewBackoffPolicy(minBackoff, interval)
		retries        = 0
	)
	defer CloseTimer(timer, &drained)

	for {
		select {
		case <-ctx.Done():
			return
		case started := <-timer.C:
			drained = true

			reset, err := f(ctx)
			next := max(0, time.Until(started.Add(interval)))
			if err != nil {
				retries++
				next = mini(backoff(retries), next)
			} else {
				retries = 0
			}

			if 0 < reset && reset < next {
				next = reset
			}
			ResetTimer(timer, next, &drained)
		}
	}
}
