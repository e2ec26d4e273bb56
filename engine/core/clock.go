package core

import "time"

// FrameClock is a monotonic stopwatch that measures the time between
// consecutive laps. The engine owns two of these: one paces simulation
// updates, the other paces rendering.
type FrameClock struct {
	last time.Time
	now  func() time.Time
}

func NewFrameClock() *FrameClock {
	c := &FrameClock{now: time.Now}
	c.last = c.now()
	return c
}

// NewFrameClockAt builds a clock driven by the given time source instead of
// the wall clock. Used by tests to script deterministic laps.
func NewFrameClockAt(now func() time.Time) *FrameClock {
	c := &FrameClock{now: now}
	c.last = c.now()
	return c
}

// Lap returns the elapsed time since the previous lap and advances the
// marker. The first lap measures time since construction. Never negative.
func (c *FrameClock) Lap() time.Duration {
	t := c.now()
	elapsed := t.Sub(c.last)
	c.last = t
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}
