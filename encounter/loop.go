// Package encounter runs the boss fight one frame at a time: player input,
// the boss and its escort, collisions, pickups, timed effects and the end of
// level checks, always in the same order.
package encounter

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/common"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/system"
	"github.com/milk9111/bossfight/pool"
	"github.com/milk9111/bossfight/prefabs"
)

type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeCleared
	OutcomeLost
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCleared:
		return "cleared"
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	}
	return "running"
}

// Screen codes handed back to whatever runs the encounter.
const (
	ReturnMenu     = 1
	ReturnNext     = 2
	ReturnGameOver = 3
)

type PlayerInput struct {
	Left  bool
	Right bool
	Fire  bool
}

// FrameInput is the polled input for one frame. Pause and Quit are level
// triggered; the loop applies its own cooldowns.
type FrameInput struct {
	Players [NumPlayers]PlayerInput
	Pause   bool
	Quit    bool
}

// Result summarises a finished encounter.
type Result struct {
	Outcome    Outcome
	ReturnCode int
	Score      int
	Lives      int
	ClearTime  time.Duration
}

type Loop struct {
	spec prefabs.EncounterSpec

	clock        Clock
	log          Logger
	rng          *rand.Rand
	coop         bool
	achievements AchievementSink
	drops        *DropTable
	dropsSet     bool

	state      *State
	ships      [NumPlayers]*Ship
	boss       *boss.Adversary
	bossTuning boss.Tuning
	bossY      int
	link       *bossLink
	formation  *Formation

	projectiles    []*Projectile
	items          []*Item
	projectilePool *pool.Pool[Projectile]
	itemPool       *pool.Pool[Item]
	scratchP       []*Projectile
	scratchI       []*Item

	world     *ecs.World
	events    *ecs.EventQueue
	scheduler *ecs.Scheduler

	inputDelay    *cooldown
	pauseCooldown *cooldown
	quitCooldown  *cooldown
	finishDelay   *cooldown
	clearTimer    *ClearTimer

	frame          uint64
	running        bool
	paused         bool
	finished       bool
	tookDamage     bool
	countdownFired bool
	outcome        Outcome
	returnCode     int
	result         *Result
}

// New builds an encounter from spec. The boss is created last, which spawns
// the first escort wave through the formation.
func New(spec prefabs.EncounterSpec, opts ...Option) (*Loop, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("encounter: %w", err)
	}

	l := &Loop{
		spec:  spec,
		clock: SystemClock{},
		log:   defaultLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.rng == nil {
		l.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if l.achievements == nil {
		l.achievements = NewAchievements(spec.Timings.ToastFrames)
	}
	if !l.dropsSet && spec.DropScript != "" {
		table, err := LoadDropTable(spec.DropScript)
		if err != nil {
			return nil, err
		}
		l.drops = table
	}

	l.state = NewState(spec.Level, spec.Lives, l.coop)
	l.projectilePool = pool.New[Projectile](nil)
	l.itemPool = pool.New[Item](nil)

	l.world = ecs.NewWorld()
	l.events = l.world.Events()
	l.scheduler = ecs.NewScheduler(system.NewEffectSystem(), system.NewTTLSystem())

	l.inputDelay = newCooldown(l.clock, spec.Timings.InputDelay())
	l.pauseCooldown = newCooldown(l.clock, spec.Timings.PauseCooldown())
	l.quitCooldown = newCooldown(l.clock, spec.Timings.PauseCooldown())
	l.finishDelay = newCooldown(l.clock, spec.Timings.FinishDelay())
	l.clearTimer = NewClearTimer(l.clock, spec.BossLevel)

	l.placeShips()

	l.bossTuning = tuningFromSpec(spec)
	l.bossY = spec.Screen.HUDLine + spec.Boss.OffsetY
	bossX := spec.Screen.Width/2 - l.bossTuning.Width/2
	l.formation = NewFormation(spec.Tiers, spec.Screen.Width, l.bossTuning.MarginX)
	l.link = &bossLink{l: l}
	l.boss = boss.New(l.bossTuning, bossX, l.bossY, l.link, l.formation)

	l.running = true
	l.inputDelay.Reset()
	l.clearTimer.Start(spec.Level)
	return l, nil
}

func (l *Loop) placeShips() {
	s := l.spec.Ship
	y := l.spec.Screen.Height - s.OffsetBottom
	center := l.spec.Screen.Width / 2
	l.ships[0] = newShip(0, center-s.Spread, y, s.Width, s.Height)
	if l.coop {
		l.ships[1] = newShip(1, center+s.Spread, y, s.Width, s.Height)
	}
}

// tuningFromSpec overlays the non-zero spec values on the default tuning.
func tuningFromSpec(spec prefabs.EncounterSpec) boss.Tuning {
	t := boss.DefaultTuning()
	b := spec.Boss
	t.ScreenWidth = spec.Screen.Width
	setInt := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}
	setInt(&t.MaxHP, b.MaxHP)
	setInt(&t.Width, b.Width)
	setInt(&t.Height, b.Height)
	setInt(&t.MarginX, b.MarginX)
	setInt(&t.BaseStep, b.BaseStep)
	setInt(&t.BulletWidth, b.BulletWidth)
	setInt(&t.BulletHeight, b.BulletHeight)
	for i := range 2 {
		setInt(&t.MoveInterval[i], b.MoveInterval[i])
		setInt(&t.SpeedMultiplier[i], b.SpeedMultiplier[i])
		setInt(&t.FireInterval[i], b.FireInterval[i])
	}
	if b.BulletSpeed != 0 {
		t.BulletSpeed = b.BulletSpeed
	}
	if b.SpreadStep != 0 {
		t.SpreadStep = b.SpreadStep
	}
	return t.Normalize()
}

// Step runs one frame. It never blocks.
func (l *Loop) Step(in FrameInput) {
	if !l.running {
		return
	}
	l.frame++

	l.countdown()
	l.handlePause(in)
	if !l.running || l.paused {
		return
	}

	if l.inputDelay.Finished() && !l.finished {
		l.applyInput(in)
		l.updateShips()
		if l.boss.HP() > 0 {
			l.boss.Update()
		}
		l.formation.Update()
		l.formation.Shoot(l.rng, l.link.fireEscort)
	}

	l.resolveCollisions()
	l.recycleOffscreen()
	l.resolvePickups()

	l.scheduler.Update(l.world)

	l.checkCompletion()
	l.checkExit()

	// toasts age after the exit check, so the last one gets its final frame
	if u, ok := l.achievements.(interface{ Update() }); ok {
		u.Update()
	}
}

func (l *Loop) countdown() {
	if l.countdownFired || l.inputDelay.Finished() {
		return
	}
	if l.inputDelay.Elapsed() > l.spec.Timings.CountdownBeep() {
		l.countdownFired = true
		l.emit(EventCountdown, nil)
	}
}

func (l *Loop) handlePause(in FrameInput) {
	if in.Pause && l.inputDelay.Finished() && l.pauseCooldown.Finished() {
		l.paused = !l.paused
		l.pauseCooldown.Reset()
		if l.paused {
			l.emit(EventPause, nil)
		} else {
			l.emit(EventResume, nil)
		}
	}

	if l.paused && in.Quit && l.quitCooldown.Finished() {
		l.log.Printf("encounter: quit to menu")
		l.outcome = OutcomeQuit
		l.returnCode = ReturnMenu
		l.running = false
	}
}

func (l *Loop) applyInput(in FrameInput) {
	width := l.spec.Screen.Width
	for slot, s := range l.ships {
		if s == nil || s.Destroyed() {
			continue
		}
		p := in.Players[slot]
		speed := l.shipSpeed(slot)

		rightBorder := s.X+s.Width+speed > width-1
		leftBorder := s.X-speed < 1
		if p.Right && !rightBorder {
			s.X += speed
		}
		if p.Left && !leftBorder {
			s.X -= speed
		}

		if p.Fire && l.shoot(slot, s) {
			l.state.IncBulletsShot(slot)
			l.emit(EventShoot, ShipEvent{Slot: slot, X: s.X, Y: s.Y})
		}
	}
}

func (l *Loop) shipSpeed(slot int) int {
	if l.HasEffect(slot, ItemSpeedBoost) && l.spec.Ship.BoostSpeed > 0 {
		return l.spec.Ship.BoostSpeed
	}
	return l.spec.Ship.Speed
}

// shoot fires the ship's weapon if its cooldown allows it.
func (l *Loop) shoot(slot int, s *Ship) bool {
	if !s.CanFire() {
		return false
	}
	cfg := l.spec.Ship
	cd := cfg.FireCooldown
	if l.HasEffect(slot, ItemRapidFire) && cfg.RapidFire > 0 {
		cd = cfg.RapidFire
	}
	s.startCooldown(cd)

	x := s.X + s.Width/2 - cfg.BulletWidth/2
	y := s.Y - cfg.BulletHeight
	spread := []int{0}
	if l.HasEffect(slot, ItemTripleShot) {
		spread = []int{-1, 0, 1}
	}
	for _, vx := range spread {
		l.spawnProjectile(Projectile{
			X:      x,
			Y:      y,
			Width:  cfg.BulletWidth,
			Height: cfg.BulletHeight,
			VX:     vx,
			VY:     -common.AtLeast(cfg.BulletSpeed, 1),
			Team:   TeamPlayer,
			Owner:  slot + 1,
			Damage: 1,
		})
	}
	return true
}

func (l *Loop) updateShips() {
	for _, s := range l.ships {
		if s != nil {
			s.Update()
		}
	}
}

func (l *Loop) spawnProjectile(p Projectile) {
	pp := l.projectilePool.Acquire()
	*pp = p
	l.projectiles = append(l.projectiles, pp)
}

func (l *Loop) spawnItem(it Item) {
	ip := l.itemPool.Acquire()
	*ip = it
	l.items = append(l.items, ip)
}

// checkCompletion ends the level the first frame the boss is at zero hp.
func (l *Loop) checkCompletion() {
	if l.boss.HP() > 0 || l.finished {
		return
	}
	l.log.Printf("encounter: boss defeated")

	l.recycleAll()
	l.formation.Clear()
	l.finished = true
	l.outcome = OutcomeCleared
	l.returnCode = ReturnNext
	l.finishDelay.Reset()
	l.clearTimer.Stop()

	if !l.tookDamage {
		l.unlock(l.spec.Achievements.Survivor)
	}
	l.unlock(l.spec.Achievements.Clear)
}

func (l *Loop) checkExit() {
	if !l.finished || !l.finishDelay.Finished() {
		return
	}
	if l.achievements.HasPendingNotifications() {
		return
	}
	l.running = false
	l.log.Printf("encounter: finished (%s) after %d frames", l.outcome, l.frame)
	if l.clearTimer.Duration() > 0 {
		l.log.Printf("encounter: boss clear time %s", l.clearTimer.Duration().Round(time.Millisecond))
	}
}

func (l *Loop) gameOver() {
	l.log.Printf("encounter: no lives left")
	l.finished = true
	l.outcome = OutcomeLost
	l.returnCode = ReturnGameOver
	l.finishDelay.Reset()
	l.clearTimer.Stop()
	l.emit(EventGameOver, nil)
}

func (l *Loop) unlock(name string) {
	if name == "" {
		return
	}
	l.achievements.Unlock(name)
	l.emit(EventAchievement, AchievementEvent{Name: name})
}

func (l *Loop) emit(t ecs.EventType, data any) {
	l.events.Push(ecs.Event{Type: t, Data: data})
}

// Finish adds the life bonus to slot 0 and returns the result. Calling it
// again returns the same result without adding the bonus twice.
func (l *Loop) Finish() Result {
	if l.result != nil {
		return *l.result
	}
	lives := l.state.LivesRemaining()
	l.state.AddScore(0, l.spec.LifeScore*lives)
	l.log.Printf("encounter: %s with a score of %d", l.outcome, l.state.TotalScore())

	l.result = &Result{
		Outcome:    l.outcome,
		ReturnCode: l.returnCode,
		Score:      l.state.TotalScore(),
		Lives:      lives,
		ClearTime:  l.clearTimer.Duration(),
	}
	return *l.result
}

// Retune applies a reloaded spec between frames. Geometry that is already on
// screen stays where it is; cadences, sizes of new objects and the escort
// waves pick up the new values.
func (l *Loop) Retune(spec prefabs.EncounterSpec) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("encounter: retune: %w", err)
	}
	spec.Screen = l.spec.Screen
	spec.Level = l.spec.Level
	spec.Lives = l.spec.Lives

	l.spec = spec
	l.bossTuning = tuningFromSpec(spec)
	l.boss.SetTuning(l.bossTuning)
	l.formation.SetTiers(spec.Tiers)
	l.log.Printf("encounter: retuned from %s", spec.Name)
	return nil
}

// SetDropTable swaps the drop script, e.g. after a hot reload.
func (l *Loop) SetDropTable(table *DropTable) {
	l.drops = table
}

func (l *Loop) Spec() prefabs.EncounterSpec {
	return l.spec
}

func (l *Loop) Boss() *boss.Adversary {
	return l.boss
}

func (l *Loop) Formation() *Formation {
	return l.formation
}

func (l *Loop) Ships() [NumPlayers]*Ship {
	return l.ships
}

func (l *Loop) Projectiles() []*Projectile {
	return l.projectiles
}

func (l *Loop) Items() []*Item {
	return l.items
}

func (l *Loop) State() *State {
	return l.state
}

func (l *Loop) Achievements() AchievementSink {
	return l.achievements
}

func (l *Loop) Events() *ecs.EventQueue {
	return l.events
}

func (l *Loop) Running() bool {
	return l.running
}

func (l *Loop) Paused() bool {
	return l.paused
}

func (l *Loop) Finished() bool {
	return l.finished
}

func (l *Loop) Outcome() Outcome {
	return l.outcome
}

func (l *Loop) TookDamage() bool {
	return l.tookDamage
}

func (l *Loop) Frame() uint64 {
	return l.frame
}

func (l *Loop) ClearTimer() *ClearTimer {
	return l.clearTimer
}

// InputOpen reports whether the start countdown is over.
func (l *Loop) InputOpen() bool {
	return l.inputDelay.Finished()
}

// CountdownRemaining is the whole number of seconds left before input opens.
func (l *Loop) CountdownRemaining() int {
	return int(l.inputDelay.Remaining() / time.Second)
}
