package core

import "time"

// Clock measures the wall time elapsed between loop iterations.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock constructs a Clock reading time from now. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Tick returns the seconds elapsed since the previous call and advances the
// reference point. The first call returns 0. There is no upper bound: a stalled
// process observes one large delta on resume.
func (c *Clock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	delta := t.Sub(c.last)
	c.last = t
	if delta < 0 {
		return 0
	}
	return delta.Seconds()
}
