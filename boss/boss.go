// Package boss implements the encounter adversary: a two-phase state machine
// with frame-timed movement and an N-way bullet fan, shielded for as long as
// its escort formation has units alive.
package boss

import "github.com/milk9111/bossfight/common"

type Phase int

const (
	P1 Phase = iota
	P2
)

func (p Phase) String() string {
	if p == P2 {
		return "P2"
	}
	return "P1"
}

type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) sign() int {
	if d == Left {
		return -1
	}
	return 1
}

// Capabilities is the set of hooks the adversary drives. The encounter loop
// owns the implementation; the adversary only holds a reference.
type Capabilities interface {
	Fire(x, y, vx, vy int)
	SpawnTier1()
	SpawnTier2()
	ClearEscort()
	OnPhase2Start()
}

// EscortCounter reports how many escort units are still alive.
type EscortCounter interface {
	AliveCount() int
}

type Adversary struct {
	tuning Tuning
	caps   Capabilities
	escort EscortCounter

	hp           int
	phase        Phase
	invulnerable bool

	x, y        int
	direction   Direction
	moveCounter int
	frame       uint64
}

// New creates an adversary with full hp in phase P1 and asks caps for the
// first escort wave. It starts invulnerable until the first Update.
func New(tuning Tuning, x, y int, caps Capabilities, escort EscortCounter) *Adversary {
	t := tuning.Normalize()
	a := &Adversary{
		tuning:       t,
		caps:         caps,
		escort:       escort,
		hp:           t.MaxHP,
		phase:        P1,
		invulnerable: true,
		x:            x,
		y:            y,
		direction:    Right,
	}
	if caps != nil {
		caps.SpawnTier1()
	}
	return a
}

// Update advances movement, shield state and firing by one frame.
func (a *Adversary) Update() {
	a.move()

	if a.escort != nil {
		a.invulnerable = a.escort.AliveCount() > 0
	} else {
		a.invulnerable = true
	}

	a.frame++
	if a.frame%uint64(a.tuning.FireInterval[a.phase]) == 0 {
		a.fire()
	}
}

func (a *Adversary) move() {
	a.moveCounter++
	if a.moveCounter < a.tuning.MoveInterval[a.phase] {
		return
	}
	a.moveCounter = 0

	step := a.tuning.BaseStep * a.tuning.SpeedMultiplier[a.phase] * a.direction.sign()
	next := a.x + step
	left := a.tuning.MarginX
	right := a.tuning.ScreenWidth - a.tuning.MarginX - a.tuning.Width

	switch {
	case next <= left:
		next = left
		a.direction = Right
	case next+a.tuning.Width >= a.tuning.ScreenWidth-a.tuning.MarginX:
		next = right
		a.direction = Left
	}
	a.x = next
}

func (a *Adversary) fire() {
	if a.caps == nil {
		return
	}
	n := 3
	if a.phase == P2 {
		n = 5
	}
	ox := a.x + a.tuning.Width/2 - a.tuning.BulletWidth/2
	oy := a.y + a.tuning.Height
	for _, v := range FanVelocities(n, a.tuning.SpreadStep, a.tuning.BulletSpeed) {
		a.caps.Fire(ox, oy, v.VX, v.VY)
	}
}

// OnHit applies damage unless the adversary is shielded. Crossing half hp in
// P1 switches to P2 and replaces the escort wave.
func (a *Adversary) OnHit(damage int) {
	if a.invulnerable {
		return
	}
	a.hp = common.Clamp(a.hp-damage, 0, a.tuning.MaxHP)

	if a.phase == P1 && a.hp <= a.tuning.MaxHP/2 {
		a.enterPhase2()
	}
}

func (a *Adversary) enterPhase2() {
	a.phase = P2
	if a.caps == nil {
		return
	}
	a.caps.ClearEscort()
	a.caps.SpawnTier2()
	a.caps.OnPhase2Start()
}

func (a *Adversary) HP() int {
	return a.hp
}

func (a *Adversary) MaxHP() int {
	return a.tuning.MaxHP
}

func (a *Adversary) Phase() Phase {
	return a.phase
}

func (a *Adversary) Invulnerable() bool {
	return a.invulnerable
}

func (a *Adversary) Direction() Direction {
	return a.direction
}

func (a *Adversary) FrameCounter() uint64 {
	return a.frame
}

func (a *Adversary) Tuning() Tuning {
	return a.tuning
}

func (a *Adversary) Position() (int, int) {
	return a.x, a.y
}

func (a *Adversary) SetPosition(x, y int) {
	a.x, a.y = x, y
}

func (a *Adversary) SetDirection(d Direction) {
	a.direction = d
}

// Bounds returns the adversary hitbox.
func (a *Adversary) Bounds() common.Rect {
	return common.Rect{X: a.x, Y: a.y, Width: a.tuning.Width, Height: a.tuning.Height}
}

// SetTuning swaps the constants in place. MaxHP changes keep the current hp
// within range; counters are left alone.
func (a *Adversary) SetTuning(t Tuning) {
	a.tuning = t.Normalize()
	a.hp = common.Clamp(a.hp, 0, a.tuning.MaxHP)
}
