package timerutils

import (
	"time"
)

// NewTimer returns a timer that fires immediately.
func NewTimer() (t *time.Timer, drained bool) {
	return time.NewTimer(0), false
}

// ResetTimer stops the timer, drains its channel unless that already
// happened and schedules it again. drained is false afterwards.
func ResetTimer(timer *time.Timer, d time.Duration, drained *bool) {
	if drained == nil {
		panic("drained bool pointer is nil")
	}
	if !timer.Stop() && !*drained {
		<-timer.C
	}
	timer.Reset(d)
	*drained = false
}

// CloseTimer stops the timer for good, to be used with defer.
func CloseTimer(timer *time.Timer, drained *bool) {
	if drained == nil {
		panic("drained bool pointer is nil")
	}
	if timer.Stop() || *drained {
		return
	}
	<-timer.C
	*drained = true
}
