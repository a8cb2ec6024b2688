package encounter

import "github.com/milk9111/bossfight/common"

type Team int

const (
	// TeamEnemy projectiles travel down the screen towards the ships.
	TeamEnemy Team = iota
	// TeamPlayer projectiles travel up towards the boss and its escort.
	TeamPlayer
)

type Projectile struct {
	X, Y   int
	Width  int
	Height int
	VX, VY int
	Team   Team
	// Owner is the firing player id (1 or 2), 0 for enemy fire.
	Owner  int
	Damage int
}

func (p *Projectile) Bounds() common.Rect {
	return common.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func (p *Projectile) advance() {
	p.X += p.VX
	p.Y += p.VY
}

type ItemKind string

const (
	ItemCoin       ItemKind = "coin"
	ItemScore      ItemKind = "score"
	ItemExtraLife  ItemKind = "extra_life"
	ItemTripleShot ItemKind = "triple_shot"
	ItemRapidFire  ItemKind = "rapid_fire"
	ItemSpeedBoost ItemKind = "speed_boost"
)

func (k ItemKind) Valid() bool {
	switch k {
	case ItemCoin, ItemScore, ItemExtraLife, ItemTripleShot, ItemRapidFire, ItemSpeedBoost:
		return true
	}
	return false
}

// Item is a pickup dropped by a destroyed escort unit. It falls until a ship
// collects it or it leaves the bottom of the screen.
type Item struct {
	X, Y    int
	Width   int
	Height  int
	VY      int
	Kind    ItemKind
	Payload int
}

func (it *Item) Bounds() common.Rect {
	return common.Rect{X: it.X, Y: it.Y, Width: it.Width, Height: it.Height}
}
