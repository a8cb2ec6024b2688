package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/bossfight/encounter"
)

// Terminals only report key presses, so a key counts as held until
// keyTimeout passes without a repeat.
const keyTimeout = 150 * time.Millisecond

type action int

const (
	actLeft action = iota
	actRight
	actFire
	actCount
)

type keyState struct {
	held  [encounter.NumPlayers][actCount]time.Time
	pause bool
	quit  bool
	exit  bool
}

// press records one key event at now.
func (k *keyState) press(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyLeft:
		k.held[1][actLeft] = now
	case tcell.KeyRight:
		k.held[1][actRight] = now
	case tcell.KeyEnter:
		k.held[1][actFire] = now
	case tcell.KeyEscape:
		k.pause = true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		k.quit = true
	case tcell.KeyCtrlC:
		k.exit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			k.held[0][actLeft] = now
		case 'd', 'D':
			k.held[0][actRight] = now
		case ' ':
			k.held[0][actFire] = now
		case 'p', 'P':
			k.pause = true
		case 'q', 'Q':
			k.quit = true
		}
	}
}

// frame builds the input for one Step and clears the one-shot keys.
func (k *keyState) frame(now time.Time) encounter.FrameInput {
	var in encounter.FrameInput
	for slot := range k.held {
		h := &k.held[slot]
		in.Players[slot] = encounter.PlayerInput{
			Left:  now.Sub(h[actLeft]) < keyTimeout,
			Right: now.Sub(h[actRight]) < keyTimeout,
			Fire:  now.Sub(h[actFire]) < keyTimeout,
		}
	}
	in.Pause, in.Quit = k.pause, k.quit
	k.pause, k.quit = false, false
	return in
}
