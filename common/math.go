package common

// Playfield size shared by the front ends. The encounter itself reads its
// dimensions from the encounter spec.
const (
	BaseWidth  = 448
	BaseHeight = 520
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Abs returns the absolute value of v.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AtLeast returns v, or min when v is below it.
func AtLeast(v, min int) int {
	if v < min {
		return min
	}
	return v
}
