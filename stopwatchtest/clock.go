package stopwatchtest

import (
	"sync"
	"time"
)

// Clock is a manually advanced clock. The zero value starts at the Unix
// epoch. Safe for concurrent use.
type Clock struct {
	now time.Time
	mu  sync.Mutex
}

// NewClock creates a [Clock] starting at the Unix epoch.
func NewClock() *Clock {
	return &Clock{now: time.Unix(0, 0)}
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.now.IsZero() {
		c.now = time.Unix(0, 0)
	}

	return c.now
}

// Advance moves the clock forward by d. Negative values are ignored so the
// clock stays monotonic.
func (c *Clock) Advance(d time.Duration) {
	if d < 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.now.IsZero() {
		c.now = time.Unix(0, 0)
	}

	c.now = c.now.Add(d)
}
