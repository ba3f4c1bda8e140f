package entity

import "time"

// Clock supplies the current time to components that need it (next-meeting
// queries, reminder windows). The model never reads the system clock
// directly; a Clock is always injected so tests stay deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. The default for production wiring.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant. Intended for tests.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.Time }
