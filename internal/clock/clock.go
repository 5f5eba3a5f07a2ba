package clock

import "time"

// Clock is the time source the game runs against. Now is song time relative
// to the scheduled start, so it is negative during the countdown. Duration
// is 0 when no source is loaded.
type Clock interface {
	Now() time.Duration
	Duration() time.Duration
	Play(delay time.Duration)
	Stop()
	Ready() bool
}
