package core

import "time"

// Clock supplies wall-clock time to the session. The item-refresh cadences
// and poison expiry run on wall time rather than tick count, so tests inject
// a fake clock instead of sleeping.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}
