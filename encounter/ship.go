package encounter

import "github.com/milk9111/bossfight/common"

// Ship is a player ship. Positions are the top-left corner in screen pixels.
type Ship struct {
	Slot   int
	X, Y   int
	Width  int
	Height int
	Hits   int

	cooldown  int
	destroyed bool
	respawn   int
}

func newShip(slot, x, y, w, h int) *Ship {
	return &Ship{Slot: slot, X: x, Y: y, Width: w, Height: h}
}

func (s *Ship) Bounds() common.Rect {
	return common.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

func (s *Ship) Destroyed() bool {
	return s.destroyed
}

func (s *Ship) Hit() {
	s.Hits++
}

// Destroy takes the ship out of play. It comes back after respawnFrames
// updates, or never when respawnFrames is zero.
func (s *Ship) Destroy(respawnFrames int) {
	s.destroyed = true
	s.respawn = respawnFrames
}

// Respawning reports whether a destroyed ship is counting down to return.
// A destroyed ship that is not respawning is out for good.
func (s *Ship) Respawning() bool {
	return s.destroyed && s.respawn > 0
}

func (s *Ship) CanFire() bool {
	return !s.destroyed && s.cooldown == 0
}

func (s *Ship) startCooldown(frames int) {
	s.cooldown = common.AtLeast(frames, 0)
}

func (s *Ship) Update() {
	if s.cooldown > 0 {
		s.cooldown--
	}
	if s.destroyed && s.respawn > 0 {
		s.respawn--
		if s.respawn == 0 {
			s.destroyed = false
		}
	}
}
