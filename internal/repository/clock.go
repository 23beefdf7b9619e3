package repository

import (
	"sync"
	"time"
)

// DefaultPrecision matches what Postgres timestamptz columns keep.
const DefaultPrecision = time.Microsecond

// Clock hands out UTC instants truncated to a storage precision. Every reading
// is strictly later than the one before it, so an update always moves
// updatedAt forward even within the same tick.
type Clock struct {
	mu        sync.Mutex
	now       func() time.Time
	precision time.Duration
	last      time.Time
}

func NewClock(precision time.Duration) *Clock {
	return newClockAt(time.Now, precision)
}

func newClockAt(now func() time.Time, precision time.Duration) *Clock {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return &Clock{now: now, precision: precision}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(c.precision)
	if !t.After(c.last) {
		t = c.last.Add(c.precision)
	}
	c.last = t
	return t
}

// observe moves the clock past t so that later readings sort after
// timestamps that were loaded rather than generated.
func (c *Clock) observe(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t.After(c.last) {
		c.last = t.UTC().Truncate(c.precision)
	}
}
