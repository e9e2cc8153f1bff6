package wheel

import "time"

// Clock provides the current time. Tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant
func (c *FixedClock) Now() time.Time { return c.T }

// Advance moves the clock forward
func (c *FixedClock) Advance(d time.Duration) { c.T = c.T.Add(d) }
