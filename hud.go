package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bossfight/encounter"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD draws the score strip above the playfield and the centred messages.
type HUD struct {
	small text.Face
	large text.Face
}

func NewHUD() (*HUD, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("hud: load font: %w", err)
	}
	return &HUD{
		small: &text.GoTextFace{Source: s, Size: 13},
		large: &text.GoTextFace{Source: s, Size: 28},
	}, nil
}

func (h *HUD) print(screen *ebiten.Image, face text.Face, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func (h *HUD) center(screen *ebiten.Image, face text.Face, s string, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	h.print(screen, face, s, (float64(screen.Bounds().Dx())-w)/2, y, clr)
}

func (h *HUD) Draw(screen *ebiten.Image, l *encounter.Loop) {
	spec := l.Spec()
	st := l.State()

	h.print(screen, h.small, fmt.Sprintf("LEVEL %d", st.Level), 8, 6, colornames.White)
	h.print(screen, h.small, fmt.Sprintf("P1 %06d  x%d  $%d", st.Score[0], st.Lives[0], st.Coins[0]), 8, 24, colornames.White)
	if st.Coop {
		h.print(screen, h.small, fmt.Sprintf("P2 %06d  x%d  $%d", st.Score[1], st.Lives[1], st.Coins[1]), 8, 42, colornames.White)
	}

	b := l.Boss()
	barW := float32(spec.Screen.Width) * 0.4
	barX := float32(spec.Screen.Width) - barW - 8
	vector.StrokeRect(screen, barX, 8, barW, 10, 1, colornames.White, false)
	if b.MaxHP() > 0 {
		fill := barW * float32(b.HP()) / float32(b.MaxHP())
		clr := colornames.Crimson
		if b.Invulnerable() {
			clr = colornames.Deepskyblue
		}
		vector.FillRect(screen, barX, 8, fill, 10, clr, false)
	}
	h.print(screen, h.small, fmt.Sprintf("%s  escort %d", b.Phase(), l.Formation().AliveCount()), float64(barX), 24, colornames.Lightgrey)

	mid := float64(spec.Screen.Height) / 2
	switch {
	case !l.InputOpen():
		h.center(screen, h.large, fmt.Sprintf("%d", l.CountdownRemaining()), mid, colornames.White)
	case l.Finished() && l.Outcome() == encounter.OutcomeLost:
		h.center(screen, h.large, "GAME OVER", mid, colornames.Orangered)
	case l.Finished():
		h.center(screen, h.large, "BOSS DEFEATED", mid, colornames.Gold)
	}

	if a, ok := l.Achievements().(*encounter.Achievements); ok {
		if toast, ok := a.Active(); ok {
			h.center(screen, h.small, "Achievement unlocked: "+toast.Name, float64(spec.Screen.Height)-20, colornames.Gold)
		}
	}
}

func (h *HUD) DrawDebug(screen *ebiten.Image, s string) {
	h.print(screen, h.small, s, 8, float64(screen.Bounds().Dy())-40, colornames.Lime)
}
