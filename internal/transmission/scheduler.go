package transmission

import "time"

// Scheduler defers callbacks. The session owns no goroutines of its own;
// every wait between phases is a scheduled callback that re-enters the
// session and re-validates its state.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancelable pending callback.
type Timer interface {
	Stop() bool
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
