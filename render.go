package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bossfight/common"
	"github.com/milk9111/bossfight/encounter"
	"github.com/milk9111/bossfight/prefabs"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor  = color.RGBA{R: 0x0b, G: 0x0d, B: 0x1a, A: 0xff}
	playerShotColor  = colornames.Gold
	enemyShotColor   = colornames.Orangered
	hitboxColor      = color.RGBA{R: 255, G: 0, B: 0, A: 200}
	defaultShipColor = []color.Color{colornames.Dodgerblue, colornames.Limegreen}
)

var itemColors = map[encounter.ItemKind]color.Color{
	encounter.ItemCoin:       colornames.Gold,
	encounter.ItemScore:      colornames.White,
	encounter.ItemExtraLife:  colornames.Hotpink,
	encounter.ItemTripleShot: colornames.Orange,
	encounter.ItemRapidFire:  colornames.Cyan,
	encounter.ItemSpeedBoost: colornames.Greenyellow,
}

func fillRect(screen *ebiten.Image, r common.Rect, clr color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}

func strokeRect(screen *ebiten.Image, r common.Rect, width float32, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), width, clr, false)
}

func shipColor(p prefabs.PaletteSpec, slot int) color.Color {
	def := defaultShipColor[slot%len(defaultShipColor)]
	if slot < len(p.Ships) {
		return p.Ships[slot].Or(def)
	}
	return def
}

func drawEncounter(screen *ebiten.Image, l *encounter.Loop) {
	spec := l.Spec()
	pal := spec.Colors

	screen.Fill(backgroundColor)
	hud := float32(spec.Screen.HUDLine)
	vector.StrokeLine(screen, 0, hud, float32(spec.Screen.Width), hud, 1, colornames.Dimgray, false)

	escort := pal.Escort.Or(colornames.Seagreen)
	for _, u := range l.Formation().Units() {
		if u.Destroyed() {
			continue
		}
		fillRect(screen, u.Bounds(), escort)
	}

	if b := l.Boss(); b.HP() > 0 {
		r := b.Bounds()
		fillRect(screen, r, pal.Boss.Or(colornames.Crimson))
		if b.Invulnerable() {
			shield := common.Rect{X: r.X - 4, Y: r.Y - 4, Width: r.Width + 8, Height: r.Height + 8}
			strokeRect(screen, shield, 2, pal.Shield.Or(colornames.Deepskyblue))
		}
	}

	for slot, s := range l.Ships() {
		if s == nil || s.Destroyed() {
			continue
		}
		r := s.Bounds()
		fillRect(screen, r, shipColor(pal, slot))
		// cockpit
		fillRect(screen, common.Rect{X: r.X + r.Width/2 - 2, Y: r.Y - 4, Width: 4, Height: 4}, shipColor(pal, slot))
	}

	for _, p := range l.Projectiles() {
		clr := enemyShotColor
		if p.Team == encounter.TeamPlayer {
			clr = playerShotColor
		}
		fillRect(screen, p.Bounds(), clr)
	}

	for _, it := range l.Items() {
		clr, ok := itemColors[it.Kind]
		if !ok {
			clr = colornames.White
		}
		r := it.Bounds()
		fillRect(screen, r, clr)
		strokeRect(screen, r, 1, colornames.Black)
	}
}

func drawHitboxes(screen *ebiten.Image, l *encounter.Loop) {
	for _, u := range l.Formation().Units() {
		if !u.Destroyed() {
			strokeRect(screen, u.Bounds(), 1, hitboxColor)
		}
	}
	if b := l.Boss(); b.HP() > 0 {
		strokeRect(screen, b.Bounds(), 1, hitboxColor)
	}
	for _, s := range l.Ships() {
		if s != nil {
			strokeRect(screen, s.Bounds(), 1, hitboxColor)
		}
	}
	for _, p := range l.Projectiles() {
		strokeRect(screen, p.Bounds(), 1, hitboxColor)
	}
}
