package retained

import "time"

// Clock supplies the monotonic time tweens are sampled against.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now returns the wall clock, which carries Go's monotonic reading.
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Scenario replays and tests use it to
// step animations deterministically.
type ManualClock struct {
	now time.Time
}

// NewManualClock starts a manual clock at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current simulated time.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
