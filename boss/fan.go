package boss

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Velocity is an integer per-frame displacement.
type Velocity struct {
	VX, VY int
}

// fanAngles returns the symmetric spread for a fan of n bullets, in degrees
// measured from straight down.
func fanAngles(n int, step float64) []float64 {
	angles := make([]float64, n)
	mid := n / 2
	for i := range angles {
		angles[i] = float64(i-mid) * step
	}
	return angles
}

// FanVelocities computes the bullet velocities of an n-way fan. Each angle is
// rotated by 90 degrees so that 0 points down the screen, scaled by speed and
// rounded to whole pixels.
func FanVelocities(n int, step, speed float64) []Velocity {
	out := make([]Velocity, 0, n)
	for _, deg := range fanAngles(n, step) {
		v := cp.ForAngle((deg + 90) * math.Pi / 180).Mult(speed)
		out = append(out, Velocity{VX: int(math.Round(v.X)), VY: int(math.Round(v.Y))})
	}
	return out
}
