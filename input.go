package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bossfight/encounter"
)

const stickDeadzone = 0.2

type binding struct {
	left, right []ebiten.Key
	fire        []ebiten.Key
}

// Input maps the keyboard and the first two gamepads onto encounter input.
// Player one uses A/D and Space, player two the arrow keys and Enter.
type Input struct {
	bindings [encounter.NumPlayers]binding
}

func NewInput() *Input {
	return &Input{
		bindings: [encounter.NumPlayers]binding{
			{
				left:  []ebiten.Key{ebiten.KeyA},
				right: []ebiten.Key{ebiten.KeyD},
				fire:  []ebiten.Key{ebiten.KeySpace},
			},
			{
				left:  []ebiten.Key{ebiten.KeyArrowLeft},
				right: []ebiten.Key{ebiten.KeyArrowRight},
				fire:  []ebiten.Key{ebiten.KeyEnter, ebiten.KeyControlRight},
			},
		},
	}
}

func (in *Input) Poll() encounter.FrameInput {
	var out encounter.FrameInput
	for slot, b := range in.bindings {
		out.Players[slot] = encounter.PlayerInput{
			Left:  anyPressed(b.left),
			Right: anyPressed(b.right),
			Fire:  anyPressed(b.fire),
		}
	}

	out.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	out.Quit = inpututil.IsKeyJustPressed(ebiten.KeyBackspace)

	gamepads := ebiten.AppendGamepadIDs(nil)
	for slot := 0; slot < len(gamepads) && slot < encounter.NumPlayers; slot++ {
		id := gamepads[slot]
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		p := &out.Players[slot]

		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		p.Left = p.Left || x < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		p.Right = p.Right || x > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		p.Fire = p.Fire || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)

		out.Pause = out.Pause || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		out.Quit = out.Quit || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft)
	}
	return out
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
