package encounter

import (
	"math/rand"

	"github.com/milk9111/bossfight/common"
	"github.com/milk9111/bossfight/prefabs"
)

type FormationTier int

const (
	Tier1 FormationTier = 1
	Tier2 FormationTier = 2
)

// EscortUnit is one ship of the boss escort.
type EscortUnit struct {
	X, Y   int
	Width  int
	Height int
	Col    int
	Row    int
	Tier   FormationTier
	Points int
	Coins  int

	hits      int
	destroyed bool
}

func (u *EscortUnit) Bounds() common.Rect {
	return common.Rect{X: u.X, Y: u.Y, Width: u.Width, Height: u.Height}
}

func (u *EscortUnit) Destroyed() bool {
	return u.destroyed
}

// Hit removes one hit point and reports whether the unit was destroyed by it.
func (u *EscortUnit) Hit() bool {
	if u.destroyed {
		return false
	}
	u.hits--
	if u.hits <= 0 {
		u.destroyed = true
	}
	return u.destroyed
}

func (u *EscortUnit) destroy() {
	u.destroyed = true
}

// Formation is the grid of escort units guarding the boss. Units are kept in
// column-major order, which is also the order collisions test them in.
type Formation struct {
	tiers       []prefabs.TierSpec
	screenWidth int
	marginX     int

	tier        FormationTier
	units       []*EscortUnit
	direction   int
	moveCounter int
	fireCounter int
}

func NewFormation(tiers []prefabs.TierSpec, screenWidth, marginX int) *Formation {
	return &Formation{
		tiers:       tiers,
		screenWidth: screenWidth,
		marginX:     marginX,
		direction:   1,
	}
}

func (f *Formation) spec() prefabs.TierSpec {
	idx := int(f.tier) - 1
	if idx < 0 || idx >= len(f.tiers) {
		return prefabs.TierSpec{}
	}
	return f.tiers[idx]
}

// SetTiers swaps the wave definitions. The current wave keeps its units.
func (f *Formation) SetTiers(tiers []prefabs.TierSpec) {
	f.tiers = tiers
}

// Spawn replaces the formation with a fresh grid of the given tier,
// horizontally centred with its top row at y=0. Callers offset the units
// into place through Units.
func (f *Formation) Spawn(tier FormationTier) {
	f.tier = tier
	spec := f.spec()
	f.units = f.units[:0]
	f.direction = 1
	f.moveCounter = 0
	f.fireCounter = 0

	if spec.Cols <= 0 || spec.Rows <= 0 {
		return
	}
	gridWidth := (spec.Cols-1)*spec.SpacingX + spec.UnitWidth
	startX := (f.screenWidth - gridWidth) / 2
	hits := common.AtLeast(spec.Hits, 1)

	for c := 0; c < spec.Cols; c++ {
		for r := 0; r < spec.Rows; r++ {
			f.units = append(f.units, &EscortUnit{
				X:      startX + c*spec.SpacingX,
				Y:      r * spec.SpacingY,
				Width:  spec.UnitWidth,
				Height: spec.UnitHeight,
				Col:    c,
				Row:    r,
				Tier:   tier,
				Points: spec.Points,
				Coins:  spec.Coins,
				hits:   hits,
			})
		}
	}
}

func (f *Formation) Tier() FormationTier {
	return f.tier
}

// Units returns the live units in formation order. The slice is owned by the
// formation and is only valid until the next mutating call.
func (f *Formation) Units() []*EscortUnit {
	return f.units
}

func (f *Formation) AliveCount() int {
	n := 0
	for _, u := range f.units {
		if !u.destroyed {
			n++
		}
	}
	return n
}

// Remove drops u from the formation.
func (f *Formation) Remove(u *EscortUnit) {
	for i, v := range f.units {
		if v == u {
			copy(f.units[i:], f.units[i+1:])
			f.units[len(f.units)-1] = nil
			f.units = f.units[:len(f.units)-1]
			return
		}
	}
}

// Clear force-destroys every unit and returns how many were alive.
func (f *Formation) Clear() int {
	n := 0
	for i, u := range f.units {
		if !u.destroyed {
			n++
		}
		u.destroy()
		f.units[i] = nil
	}
	f.units = f.units[:0]
	return n
}

// Update moves the whole block sideways every MoveInterval frames and turns
// it around at the screen margins.
func (f *Formation) Update() {
	if len(f.units) == 0 {
		return
	}
	spec := f.spec()
	f.moveCounter++
	if f.moveCounter < common.AtLeast(spec.MoveInterval, 1) {
		return
	}
	f.moveCounter = 0

	minX, maxX := f.units[0].X, f.units[0].X+f.units[0].Width
	for _, u := range f.units[1:] {
		minX = min(minX, u.X)
		maxX = max(maxX, u.X+u.Width)
	}

	dx := spec.Step * f.direction
	switch {
	case minX+dx <= f.marginX:
		dx = f.marginX - minX
		f.direction = 1
	case maxX+dx >= f.screenWidth-f.marginX:
		dx = f.screenWidth - f.marginX - maxX
		f.direction = -1
	}
	for _, u := range f.units {
		u.X += dx
	}
}

// Shoot fires one bullet every FireInterval frames from the lowest live unit
// of a random column.
func (f *Formation) Shoot(rng *rand.Rand, fire func(x, y, vx, vy int)) {
	if len(f.units) == 0 || fire == nil {
		return
	}
	spec := f.spec()
	f.fireCounter++
	if f.fireCounter < common.AtLeast(spec.FireInterval, 1) {
		return
	}
	f.fireCounter = 0

	shooters := f.shooters()
	if len(shooters) == 0 {
		return
	}
	u := shooters[0]
	if rng != nil {
		u = shooters[rng.Intn(len(shooters))]
	}
	fire(u.X+u.Width/2, u.Y+u.Height, 0, spec.BulletSpeed)
}

// shooters returns the lowest live unit of each column, left to right.
func (f *Formation) shooters() []*EscortUnit {
	var out []*EscortUnit
	for _, u := range f.units {
		if u.destroyed {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Col == u.Col {
			if u.Y > out[n-1].Y {
				out[n-1] = u
			}
			continue
		}
		out = append(out, u)
	}
	return out
}
