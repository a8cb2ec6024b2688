package encounter

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/bossfight/prefabs"
)

type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type fakeSink struct {
	unlocked []string
	pending  bool
}

func (s *fakeSink) Unlock(name string) {
	for _, n := range s.unlocked {
		if n == name {
			return
		}
	}
	s.unlocked = append(s.unlocked, name)
}

func (s *fakeSink) HasPendingNotifications() bool {
	return s.pending
}

func loadSpec(t *testing.T) prefabs.EncounterSpec {
	t.Helper()
	spec, err := prefabs.LoadEncounterSpec(prefabs.EncounterFile)
	require.NoError(t, err)
	return spec
}

func newTestLoop(t *testing.T, spec prefabs.EncounterSpec, opts ...Option) (*Loop, *manualClock) {
	t.Helper()
	clock := newManualClock()
	base := []Option{
		WithClock(clock),
		WithLogger(log.New(io.Discard, "", 0)),
		WithSeed(7),
	}
	l, err := New(spec, append(base, opts...)...)
	require.NoError(t, err)
	return l, clock
}

// newOpenLoop returns a loop whose start countdown has already run out.
func newOpenLoop(t *testing.T, opts ...Option) (*Loop, *manualClock) {
	t.Helper()
	spec := loadSpec(t)
	l, clock := newTestLoop(t, spec, opts...)
	clock.Advance(spec.Timings.InputDelay())
	require.True(t, l.InputOpen())
	l.Events().Drain()
	return l, clock
}

// clearEscort removes every escort unit so the boss drops its shield on the
// next update.
func clearEscort(l *Loop) {
	l.formation.Clear()
}

func playerShot(owner, x, y int) Projectile {
	return Projectile{X: x, Y: y, Width: 6, Height: 10, VY: -6, Team: TeamPlayer, Owner: owner, Damage: 1}
}

func enemyShot(x, y int) Projectile {
	return Projectile{X: x, Y: y, Width: 6, Height: 10, VY: 4, Team: TeamEnemy, Damage: 1}
}
