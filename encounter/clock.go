package encounter

import "time"

// Clock supplies wall time for the encounter's millisecond gates.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// cooldown is a wall-time gate. A gate that was never reset counts as
// finished.
type cooldown struct {
	clock    Clock
	duration time.Duration
	start    time.Time
	armed    bool
}

func newCooldown(clock Clock, d time.Duration) *cooldown {
	return &cooldown{clock: clock, duration: d}
}

func (c *cooldown) Reset() {
	c.start = c.clock.Now()
	c.armed = true
}

func (c *cooldown) Finished() bool {
	return !c.armed || c.Elapsed() >= c.duration
}

func (c *cooldown) Elapsed() time.Duration {
	if !c.armed {
		return 0
	}
	return c.clock.Now().Sub(c.start)
}

// Remaining is the time left before the gate opens, never negative.
func (c *cooldown) Remaining() time.Duration {
	if c.Finished() {
		return 0
	}
	return c.duration - c.Elapsed()
}
