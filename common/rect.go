package common

// Rect is an integer AABB anchored at its top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Center returns the integer centre of r.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Collides reports whether a and b overlap. The centres must be strictly
// closer than the summed half extents on both axes, so boxes that only touch
// along an edge do not collide.
func Collides(a, b Rect) bool {
	ax, ay := a.Center()
	bx, by := b.Center()
	maxDX := a.Width/2 + b.Width/2
	maxDY := a.Height/2 + b.Height/2
	return Abs(ax-bx) < maxDX && Abs(ay-by) < maxDY
}
