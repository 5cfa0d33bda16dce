package timerutils

import "time"

// BackoffPolicy returns how long to wait before the given retry (starting at 1).
type BackoffPolicy func(retry int) time.Duration

// NewBackoffPolicy doubles min with every retry and never exceeds max.
func NewBackoffPolicy(min, max time.Duration) BackoffPolicy {
	if max < min {
		max = min
	}
	return func(retry int) time.Duration {
		d := min
		for i := 1; i < retry && d < max; i++ {
			d *= 2
		}
		return mini(d, max)
	}
}

func mini(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
