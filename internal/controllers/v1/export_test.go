package v1

import "time"

// SetClock replaces the clock used for the default month in tests.
func SetClock(fn func() time.Time) {
	now = fn
}
