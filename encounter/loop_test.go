package encounter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

func TestNewPlacesEncounter(t *testing.T) {
	spec := loadSpec(t)
	l, _ := newTestLoop(t, spec)

	x, y := l.Boss().Position()
	assert.Equal(t, 174, x)
	assert.Equal(t, 108, y)
	assert.Equal(t, boss.P1, l.Boss().Phase())
	assert.True(t, l.Boss().Invulnerable())
	assert.Equal(t, 10, l.Formation().AliveCount())
	assert.Equal(t, Tier1, l.Formation().Tier())

	for _, u := range l.Formation().Units() {
		assert.GreaterOrEqual(t, u.Y, 188)
	}

	ships := l.Ships()
	require.NotNil(t, ships[0])
	assert.Nil(t, ships[1])
	assert.Equal(t, 3, l.State().LivesRemaining())
	assert.True(t, l.ClearTimer().Running())
}

func TestCoopAddsSecondShip(t *testing.T) {
	l, _ := newTestLoop(t, loadSpec(t), WithCoop(true))
	ships := l.Ships()
	require.NotNil(t, ships[1])
	assert.Equal(t, ships[0].X+120, ships[1].X)
	assert.Equal(t, 6, l.State().LivesRemaining())
}

func TestInputDelayGatesSimulation(t *testing.T) {
	l, clock := newTestLoop(t, loadSpec(t))
	fire := FrameInput{Players: [NumPlayers]PlayerInput{{Fire: true, Right: true}}}
	x0 := l.Ships()[0].X

	for i := 0; i < 10; i++ {
		l.Step(fire)
	}
	assert.Zero(t, l.Boss().FrameCounter())
	assert.Empty(t, l.Projectiles())
	assert.Equal(t, x0, l.Ships()[0].X)
	assert.Equal(t, 6, l.CountdownRemaining())

	clock.Advance(2 * time.Second)
	l.Step(FrameInput{})
	l.Step(FrameInput{})
	assert.Len(t, ecs.Filter(l.Events().Drain(), EventCountdown), 1)
	assert.Equal(t, 4, l.CountdownRemaining())

	clock.Advance(4 * time.Second)
	require.True(t, l.InputOpen())
	l.Step(fire)
	assert.Equal(t, uint64(1), l.Boss().FrameCounter())
	assert.Len(t, l.Projectiles(), 1)
	assert.Equal(t, x0+2, l.Ships()[0].X)
	assert.Empty(t, ecs.Filter(l.Events().Drain(), EventCountdown))
}

func TestShipMovementStopsAtEdges(t *testing.T) {
	l, _ := newOpenLoop(t)
	s := l.Ships()[0]

	s.X = 2
	l.Step(FrameInput{Players: [NumPlayers]PlayerInput{{Left: true}}})
	assert.Equal(t, 2, s.X, "x-speed below 1 blocks left")

	s.X = 3
	l.Step(FrameInput{Players: [NumPlayers]PlayerInput{{Left: true}}})
	assert.Equal(t, 1, s.X)

	s.X = 448 - s.Width - 2
	l.Step(FrameInput{Players: [NumPlayers]PlayerInput{{Right: true}}})
	assert.Equal(t, 448-s.Width-2, s.X, "x+w+speed past width-1 blocks right")
}

func TestShipFireCooldown(t *testing.T) {
	l, _ := newOpenLoop(t)
	fire := FrameInput{Players: [NumPlayers]PlayerInput{{Fire: true}}}

	shots := 0
	for i := 0; i < 46; i++ {
		l.Step(fire)
		shots += len(ecs.Filter(l.Events().Drain(), EventShoot))
	}
	assert.Equal(t, 2, shots)
	assert.Equal(t, 2, l.State().BulletsShot[0])
}

func TestEscortShadowsBoss(t *testing.T) {
	l, _ := newOpenLoop(t)

	units := l.Formation().Units()
	guard := units[0]
	for _, u := range append([]*EscortUnit(nil), units[1:]...) {
		l.Formation().Remove(u)
	}
	require.Equal(t, 1, l.Formation().AliveCount())

	// guard sits on top of the boss hitbox
	guard.X, guard.Y = 200, 150
	l.spawnProjectile(playerShot(1, 209, 152))

	l.Step(FrameInput{})
	evts := l.Events().Drain()
	assert.Equal(t, 10, l.Boss().HP())
	assert.Zero(t, l.Formation().AliveCount())
	assert.Len(t, ecs.Filter(evts, EventEscortDestroyed), 1)
	assert.Empty(t, ecs.Filter(evts, EventBossHit))
	assert.Equal(t, 10, l.State().Score[0])
	assert.Equal(t, 1, l.State().Coins[0])
	assert.Equal(t, 1, l.State().ShipsDestroyed[0])

	l.spawnProjectile(playerShot(1, 221, 133))
	l.Step(FrameInput{})
	require.False(t, l.Boss().Invulnerable())
	assert.Equal(t, 9, l.Boss().HP())

	hits := ecs.Filter(l.Events().Drain(), EventBossHit)
	require.Len(t, hits, 1)
	assert.False(t, hits[0].Data.(BossHitEvent).Shielded)
}

func TestShieldedBossConsumesProjectile(t *testing.T) {
	l, _ := newOpenLoop(t)
	l.spawnProjectile(playerShot(1, 221, 133))

	l.Step(FrameInput{})
	assert.Equal(t, 10, l.Boss().HP())
	assert.Empty(t, l.Projectiles())

	hits := ecs.Filter(l.Events().Drain(), EventBossHit)
	require.Len(t, hits, 1)
	assert.True(t, hits[0].Data.(BossHitEvent).Shielded)
}

func TestKillCreditsOwnerSlot(t *testing.T) {
	tests := []struct {
		name  string
		owner int
		slot  int
	}{
		{name: "player_one", owner: 1, slot: 0},
		{name: "player_two", owner: 2, slot: 1},
		{name: "unknown_owner", owner: 7, slot: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newOpenLoop(t, WithCoop(true), WithDropTable(nil))
			u := l.Formation().Units()[0]
			l.spawnProjectile(playerShot(tt.owner, u.X+9, u.Y+2))

			l.Step(FrameInput{})
			assert.Equal(t, 9, l.Formation().AliveCount())
			assert.Equal(t, 10, l.State().Score[tt.slot])
			assert.Equal(t, 10, l.State().TotalScore())
		})
	}
}

func TestKillRollsDrop(t *testing.T) {
	table, err := NewDropTable("always", []byte(`drop := "coin"; payload := 7`))
	require.NoError(t, err)
	l, _ := newOpenLoop(t, WithDropTable(table))

	u := l.Formation().Units()[0]
	cx, cy := u.Bounds().Center()
	l.spawnProjectile(playerShot(1, u.X+9, u.Y+2))
	l.Step(FrameInput{})

	require.Len(t, l.Items(), 1)
	it := l.Items()[0]
	assert.Equal(t, ItemCoin, it.Kind)
	assert.Equal(t, 7, it.Payload)
	assert.Equal(t, cx-8, it.X)
	// spawned this frame, then fell once during cleanup
	assert.Equal(t, cy-8+2, it.Y)
}

func TestEnemyProjectileHitsFirstShipOnly(t *testing.T) {
	l, _ := newOpenLoop(t, WithCoop(true))
	ships := l.Ships()
	ships[1].X = ships[0].X

	l.spawnProjectile(enemyShot(ships[0].X+10, ships[0].Y))
	l.Step(FrameInput{})

	assert.True(t, ships[0].Destroyed())
	assert.False(t, ships[1].Destroyed())
	assert.Equal(t, 1, ships[0].Hits)
	assert.Equal(t, 2, l.State().Lives[0])
	assert.Equal(t, 3, l.State().Lives[1])
	assert.True(t, l.TookDamage())
	assert.Empty(t, l.Projectiles())

	hits := ecs.Filter(l.Events().Drain(), EventPlayerHit)
	require.Len(t, hits, 1)
	assert.Equal(t, 0, hits[0].Data.(ShipEvent).Slot)
}

func TestDestroyedShipRespawns(t *testing.T) {
	spec := loadSpec(t)
	spec.Timings.RespawnFrames = 5
	l, clock := newTestLoop(t, spec)
	clock.Advance(spec.Timings.InputDelay())

	s := l.Ships()[0]
	l.spawnProjectile(enemyShot(s.X+10, s.Y))
	l.Step(FrameInput{})
	require.True(t, s.Destroyed())

	for i := 0; i < 5; i++ {
		l.Step(FrameInput{})
	}
	assert.False(t, s.Destroyed())
}

func TestGameOverWhenLastLifeLost(t *testing.T) {
	spec := loadSpec(t)
	spec.Lives = 1
	l, clock := newTestLoop(t, spec)
	clock.Advance(spec.Timings.InputDelay())

	s := l.Ships()[0]
	l.spawnProjectile(enemyShot(s.X+10, s.Y))
	l.Step(FrameInput{})

	assert.True(t, l.Finished())
	assert.Equal(t, OutcomeLost, l.Outcome())
	assert.Len(t, ecs.Filter(l.Events().Drain(), EventGameOver), 1)

	// the boss stays alive, so no completion and no achievements
	sink := l.Achievements().(*Achievements)
	assert.Empty(t, sink.Names())

	clock.Advance(spec.Timings.FinishDelay())
	l.Step(FrameInput{})
	assert.False(t, l.Running())

	res := l.Finish()
	assert.Equal(t, ReturnGameOver, res.ReturnCode)
	assert.Zero(t, res.Lives)
}

func TestItemClaimedByFirstShipOnly(t *testing.T) {
	l, _ := newOpenLoop(t, WithCoop(true))
	ships := l.Ships()
	ships[1].X = ships[0].X

	l.spawnItem(Item{X: ships[0].X + 5, Y: ships[0].Y, Width: 16, Height: 16, VY: 2, Kind: ItemCoin, Payload: 5})
	l.Step(FrameInput{})

	assert.Equal(t, 5, l.State().Coins[0])
	assert.Zero(t, l.State().Coins[1])
	assert.Empty(t, l.Items())

	picks := ecs.Filter(l.Events().Drain(), EventPickup)
	require.Len(t, picks, 1)
	assert.Equal(t, PickupEvent{Slot: 0, Kind: ItemCoin}, picks[0].Data)
}

func TestDestroyedShipStillCollects(t *testing.T) {
	l, _ := newOpenLoop(t)
	s := l.Ships()[0]
	s.Destroy(0)

	l.spawnItem(Item{X: s.X + 5, Y: s.Y, Width: 16, Height: 16, VY: 2, Kind: ItemScore, Payload: 50})
	l.Step(FrameInput{})
	assert.Equal(t, 50, l.State().Score[0])
}

func TestExtraLifeBringsBackShipOutOfLives(t *testing.T) {
	spec := loadSpec(t)
	spec.Lives = 1
	spec.Timings.RespawnFrames = 5
	l, clock := newTestLoop(t, spec, WithCoop(true))
	clock.Advance(spec.Timings.InputDelay())

	s := l.Ships()[0]
	l.spawnProjectile(enemyShot(s.X+10, s.Y))
	l.Step(FrameInput{})
	require.True(t, s.Destroyed())
	require.False(t, s.Respawning())
	require.Zero(t, l.State().Lives[0])
	require.False(t, l.Finished(), "player 2 still has a life")

	l.spawnItem(Item{X: s.X + 5, Y: s.Y, Width: 16, Height: 16, VY: 2, Kind: ItemExtraLife, Payload: 1})
	l.Step(FrameInput{})
	assert.Equal(t, 1, l.State().Lives[0])
	assert.True(t, s.Respawning())

	for i := 0; i < spec.Timings.RespawnFrames; i++ {
		l.Step(FrameInput{})
	}
	assert.False(t, s.Destroyed())
}

func TestExtraLifeKeepsRunningRespawn(t *testing.T) {
	spec := loadSpec(t)
	spec.Timings.RespawnFrames = 5
	l, clock := newTestLoop(t, spec)
	clock.Advance(spec.Timings.InputDelay())

	s := l.Ships()[0]
	s.Destroy(3)
	l.applyItem(0, &Item{Kind: ItemExtraLife, Payload: 1})
	for i := 0; i < 3; i++ {
		l.Step(FrameInput{})
	}
	assert.False(t, s.Destroyed(), "an armed respawn is not restarted")
}

func TestTimedEffects(t *testing.T) {
	spec := loadSpec(t)
	spec.Items.EffectFrames = 3
	l, clock := newTestLoop(t, spec)
	clock.Advance(spec.Timings.InputDelay())

	s := l.Ships()[0]
	l.spawnItem(Item{X: s.X + 5, Y: s.Y, Width: 16, Height: 16, VY: 2, Kind: ItemTripleShot})
	l.Step(FrameInput{})
	require.True(t, l.HasEffect(0, ItemTripleShot))
	assert.Equal(t, 2, l.EffectFrames(0, ItemTripleShot))

	l.Step(FrameInput{Players: [NumPlayers]PlayerInput{{Fire: true}}})
	var vx []int
	for _, p := range l.Projectiles() {
		if p.Team == TeamPlayer {
			vx = append(vx, p.VX)
		}
	}
	assert.Equal(t, []int{-1, 0, 1}, vx)

	l.Step(FrameInput{})
	assert.False(t, l.HasEffect(0, ItemTripleShot))

	expired := ecs.Filter(l.Events().Drain(), EventEffectExpired)
	require.Len(t, expired, 1)
	assert.Equal(t, component.Effect{Slot: 0, Kind: component.EffectTripleShot}, expired[0].Data)
}

func TestPickingUpRunningEffectRestartsIt(t *testing.T) {
	l, _ := newOpenLoop(t)
	l.grantEffect(0, component.EffectRapidFire, 10)
	l.grantEffect(0, component.EffectRapidFire, 50)
	assert.Equal(t, 50, l.EffectFrames(0, ItemRapidFire))
	assert.False(t, l.HasEffect(1, ItemRapidFire))
}

func TestInstantItems(t *testing.T) {
	l, _ := newOpenLoop(t)
	l.applyItem(0, &Item{Kind: ItemCoin, Payload: 3})
	l.applyItem(0, &Item{Kind: ItemScore, Payload: 40})
	l.applyItem(0, &Item{Kind: ItemExtraLife})

	assert.Equal(t, 3, l.State().Coins[0])
	assert.Equal(t, 40, l.State().Score[0])
	assert.Equal(t, 4, l.State().Lives[0])
}

func TestPlayfieldRecycling(t *testing.T) {
	l, _ := newOpenLoop(t, WithDropTable(nil))
	spec := l.Spec()

	l.spawnProjectile(playerShot(1, 10, spec.Screen.HUDLine+2))
	l.spawnProjectile(enemyShot(440, spec.Screen.Height-2))
	l.spawnProjectile(enemyShot(440, 300))
	l.spawnItem(Item{X: 0, Y: spec.Screen.Height - 1, Width: 16, Height: 16, VY: 2, Kind: ItemCoin})

	l.Step(FrameInput{})
	require.Len(t, l.Projectiles(), 1)
	assert.Equal(t, 304, l.Projectiles()[0].Y)
	assert.Empty(t, l.Items())
	assert.Equal(t, 2, l.projectilePool.Available())
	assert.Equal(t, 1, l.itemPool.Available())

	// released instances are reused
	l.spawnProjectile(enemyShot(440, 300))
	assert.Equal(t, 1, l.projectilePool.Available())
	assert.Equal(t, 3, l.projectilePool.Allocated())
}

func TestBossFiresThroughPool(t *testing.T) {
	l, _ := newOpenLoop(t)
	for i := 0; i < 36; i++ {
		l.Step(FrameInput{})
	}

	var enemy []*Projectile
	for _, p := range l.Projectiles() {
		if p.Team == TeamEnemy {
			enemy = append(enemy, p)
		}
	}
	require.Len(t, enemy, 3)
	for _, p := range enemy {
		assert.Equal(t, 6, p.Width)
		assert.Equal(t, 10, p.Height)
		assert.Equal(t, 4, p.VY)
	}
}

func TestPhaseTwoSwapsEscort(t *testing.T) {
	l, _ := newOpenLoop(t)
	clearEscort(l)
	l.Step(FrameInput{})
	l.Events().Drain()

	l.Boss().OnHit(5)
	assert.Equal(t, boss.P2, l.Boss().Phase())
	assert.Equal(t, Tier2, l.Formation().Tier())
	assert.Equal(t, 15, l.Formation().AliveCount())
	assert.Len(t, ecs.Filter(l.Events().Drain(), EventPhase2), 1)

	l.Step(FrameInput{})
	assert.True(t, l.Boss().Invulnerable())
}

func TestKillingShotCompletesLevel(t *testing.T) {
	l, _ := newOpenLoop(t)
	clearEscort(l)
	l.Step(FrameInput{})
	l.Boss().OnHit(9)
	require.Equal(t, 1, l.Boss().HP())
	clearEscort(l)

	l.spawnProjectile(enemyShot(20, 300))
	l.spawnItem(Item{X: 0, Y: 200, Width: 16, Height: 16, VY: 2, Kind: ItemCoin})
	l.spawnProjectile(playerShot(1, 221, 133))
	l.Step(FrameInput{})

	assert.Zero(t, l.Boss().HP())
	assert.True(t, l.Finished())
	assert.Equal(t, OutcomeCleared, l.Outcome())
	assert.Empty(t, l.Projectiles())
	assert.Empty(t, l.Items())
	assert.Zero(t, l.Formation().AliveCount())
	assert.False(t, l.ClearTimer().Running())

	evts := l.Events().Drain()
	assert.Len(t, ecs.Filter(evts, EventBossDefeated), 1)
	assert.Len(t, ecs.Filter(evts, EventAchievement), 2)

	sink := l.Achievements().(*Achievements)
	assert.Equal(t, []string{"Survivor", "Clear"}, sink.Names())
}

func TestCompletionWithoutSurvivor(t *testing.T) {
	sink := &fakeSink{}
	l, _ := newOpenLoop(t, WithAchievements(sink))
	l.tookDamage = true
	clearEscort(l)
	l.Step(FrameInput{})
	l.Boss().OnHit(10)

	l.Step(FrameInput{})
	assert.Equal(t, []string{"Clear"}, sink.unlocked)
}

func TestFinishWaitsForDelayAndToasts(t *testing.T) {
	sink := &fakeSink{pending: true}
	l, clock := newOpenLoop(t, WithAchievements(sink))
	clearEscort(l)
	l.Step(FrameInput{})
	l.Boss().OnHit(10)
	l.Step(FrameInput{})
	require.True(t, l.Finished())

	l.Step(FrameInput{})
	assert.True(t, l.Running(), "finish delay not elapsed")

	clock.Advance(l.Spec().Timings.FinishDelay())
	l.Step(FrameInput{})
	assert.True(t, l.Running(), "toasts still pending")

	sink.pending = false
	l.Step(FrameInput{})
	assert.False(t, l.Running())

	frame := l.Frame()
	l.Step(FrameInput{})
	assert.Equal(t, frame, l.Frame(), "stopped loop ignores steps")
}

func TestFinishWaitsForToastQueue(t *testing.T) {
	l, clock := newOpenLoop(t)
	clearEscort(l)
	l.Step(FrameInput{})
	l.Boss().OnHit(10)
	l.Step(FrameInput{})
	clock.Advance(l.Spec().Timings.FinishDelay())

	steps := 0
	for l.Running() && steps < 1000 {
		l.Step(FrameInput{})
		steps++
	}
	assert.Equal(t, 2*l.Spec().Timings.ToastFrames, steps)
}

func TestExitWaitsOneFrameAfterLastToast(t *testing.T) {
	l, clock := newOpenLoop(t)
	clearEscort(l)
	l.Step(FrameInput{})
	l.Boss().OnHit(10)
	l.Step(FrameInput{})
	clock.Advance(l.Spec().Timings.FinishDelay())

	sink := l.Achievements().(*Achievements)
	for i := 0; i < 2*l.Spec().Timings.ToastFrames-1; i++ {
		l.Step(FrameInput{})
	}
	assert.False(t, sink.HasPendingNotifications())
	assert.True(t, l.Running(), "the last toast expired after this frame's exit check")

	l.Step(FrameInput{})
	assert.False(t, l.Running())
}

func TestEnemyFireIgnoredAfterFinish(t *testing.T) {
	l, _ := newOpenLoop(t)
	clearEscort(l)
	l.Step(FrameInput{})
	l.Boss().OnHit(10)
	l.Step(FrameInput{})
	require.True(t, l.Finished())

	s := l.Ships()[0]
	l.spawnProjectile(enemyShot(s.X+10, s.Y))
	l.Step(FrameInput{})
	assert.False(t, s.Destroyed())
}

func TestPauseFreezesAndQuits(t *testing.T) {
	l, clock := newTestLoop(t, loadSpec(t))
	l.Step(FrameInput{Pause: true})
	assert.False(t, l.Paused(), "pause ignored during countdown")

	clock.Advance(6 * time.Second)
	l.Step(FrameInput{Pause: true})
	require.True(t, l.Paused())
	assert.Len(t, ecs.Filter(l.Events().Drain(), EventPause), 1)

	frames := l.Boss().FrameCounter()
	for i := 0; i < 10; i++ {
		l.Step(FrameInput{Pause: true})
	}
	assert.True(t, l.Paused(), "cooldown blocks toggling")
	assert.Equal(t, frames, l.Boss().FrameCounter())

	clock.Advance(301 * time.Millisecond)
	l.Step(FrameInput{Pause: true})
	assert.False(t, l.Paused())
	assert.Equal(t, frames+1, l.Boss().FrameCounter())
	assert.Len(t, ecs.Filter(l.Events().Drain(), EventResume), 1)

	clock.Advance(301 * time.Millisecond)
	l.Step(FrameInput{Pause: true})
	require.True(t, l.Paused())
	l.Step(FrameInput{Quit: true})
	assert.False(t, l.Running())
	assert.Equal(t, OutcomeQuit, l.Outcome())

	res := l.Finish()
	assert.Equal(t, ReturnMenu, res.ReturnCode)
}

func TestQuitIgnoredWhileRunning(t *testing.T) {
	l, _ := newOpenLoop(t)
	l.Step(FrameInput{Quit: true})
	assert.True(t, l.Running())
}

func TestFinishAddsLifeBonusOnce(t *testing.T) {
	l, _ := newOpenLoop(t)
	l.State().AddScore(0, 25)

	res := l.Finish()
	assert.Equal(t, 25+3*100, res.Score)
	assert.Equal(t, 3, res.Lives)

	again := l.Finish()
	assert.Equal(t, res, again)
	assert.Equal(t, 325, l.State().Score[0])
}

func TestClearTimeReported(t *testing.T) {
	l, clock := newOpenLoop(t)
	clearEscort(l)
	l.Step(FrameInput{})
	clock.Advance(30 * time.Second)
	l.Boss().OnHit(10)
	l.Step(FrameInput{})

	clock.Advance(time.Minute)
	assert.Equal(t, 36*time.Second, l.Finish().ClearTime)
}

func TestRetune(t *testing.T) {
	l, _ := newOpenLoop(t)
	spec := l.Spec()
	spec.Boss.FireInterval = [2]int{12, 6}
	spec.Tiers[0].MoveInterval = 5

	require.NoError(t, l.Retune(spec))
	assert.Equal(t, [2]int{12, 6}, l.Boss().Tuning().FireInterval)
	assert.Equal(t, 5, l.Formation().spec().MoveInterval)

	bad := spec
	bad.Tiers = nil
	assert.Error(t, l.Retune(bad))
}

func TestNewRejectsInvalidSpec(t *testing.T) {
	spec := loadSpec(t)
	spec.Screen.Width = 0
	_, err := New(spec)
	assert.Error(t, err)
}
