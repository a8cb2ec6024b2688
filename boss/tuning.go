package boss

import "github.com/milk9111/bossfight/common"

// Tuning holds the adversary's size, cadence and firing constants. Frame
// counts are in update ticks.
type Tuning struct {
	MaxHP  int
	Width  int
	Height int

	ScreenWidth int
	MarginX     int

	// BaseStep is the pixel distance of one movement step before the phase
	// multiplier is applied.
	BaseStep        int
	MoveInterval    [2]int
	SpeedMultiplier [2]int

	FireInterval [2]int
	BulletSpeed  float64
	BulletWidth  int
	BulletHeight int
	// SpreadStep is the angle between neighbouring fan bullets, in degrees.
	SpreadStep float64
}

// DefaultTuning returns the shipped constants of the encounter.
func DefaultTuning() Tuning {
	return Tuning{
		MaxHP:           10,
		Width:           100,
		Height:          60,
		ScreenWidth:     common.BaseWidth,
		MarginX:         10,
		BaseStep:        2,
		MoveInterval:    [2]int{50, 50},
		SpeedMultiplier: [2]int{1, 1},
		FireInterval:    [2]int{36, 24},
		BulletSpeed:     4,
		BulletWidth:     6,
		BulletHeight:    10,
		SpreadStep:      15,
	}
}

// Normalize clamps intervals and hit points to at least one so the modulo
// and threshold checks in Update never degenerate.
func (t Tuning) Normalize() Tuning {
	t.MaxHP = common.AtLeast(t.MaxHP, 1)
	for i := range t.MoveInterval {
		t.MoveInterval[i] = common.AtLeast(t.MoveInterval[i], 1)
		t.FireInterval[i] = common.AtLeast(t.FireInterval[i], 1)
	}
	return t
}
