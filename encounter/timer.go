package encounter

import "time"

// ClearTimer measures how long the boss level took. It only runs on the
// configured boss level; Start on any other level is ignored.
type ClearTimer struct {
	clock     Clock
	bossLevel int
	start     time.Time
	end       time.Time
	running   bool
	stopped   bool
}

func NewClearTimer(clock Clock, bossLevel int) *ClearTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &ClearTimer{clock: clock, bossLevel: bossLevel}
}

func (t *ClearTimer) Start(level int) {
	if level != t.bossLevel || t.running {
		return
	}
	t.start = t.clock.Now()
	t.end = time.Time{}
	t.running = true
	t.stopped = false
}

// Stop records the end time. It is a no-op unless the timer is running.
func (t *ClearTimer) Stop() {
	if !t.running {
		return
	}
	t.end = t.clock.Now()
	t.running = false
	t.stopped = true
}

func (t *ClearTimer) Running() bool {
	return t.running
}

func (t *ClearTimer) Duration() time.Duration {
	switch {
	case t.running:
		return t.clock.Now().Sub(t.start)
	case t.stopped:
		return t.end.Sub(t.start)
	}
	return 0
}
