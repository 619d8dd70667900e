package testutil

import (
	"sync"
	"time"
)

// SeasonOpening is 09:00 UTC on 1 July of year, the first day of pre-season.
func SeasonOpening(year int) time.Time {
	return time.Date(year, time.July, 1, 9, 0, 0, 0, time.UTC)
}

// NowAt returns a clock fixed at t.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Ticking returns a clock that starts at start and moves on by step each call.
func Ticking(start time.Time, step time.Duration) func() time.Time {
	var (
		mu   sync.Mutex
		next = start
	)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(step)
		return now
	}
}
