package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/bossfight/common"
	"github.com/milk9111/bossfight/encounter"
	"github.com/milk9111/bossfight/sfx"
)

const frameTime = 16 * time.Millisecond

var (
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim      = tcell.StyleDefault.Foreground(tcell.Color(240))
	styleBoss     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleShield   = tcell.StyleDefault.Foreground(tcell.Color(51))
	styleEscort   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleEnemyHit = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	stylePlayer   = []tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorBlue),
		tcell.StyleDefault.Foreground(tcell.ColorLime),
	}
	styleShot = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleItem = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
)

var itemRunes = map[encounter.ItemKind]rune{
	encounter.ItemCoin:       '$',
	encounter.ItemScore:      '*',
	encounter.ItemExtraLife:  '+',
	encounter.ItemTripleShot: 'T',
	encounter.ItemRapidFire:  'R',
	encounter.ItemSpeedBoost: 'S',
}

// Terminal drives the encounter at a fixed tick and draws it with tcell,
// scaling the playfield onto whatever grid the terminal has.
type Terminal struct {
	screen tcell.Screen
	loop   *encounter.Loop
	sound  sfx.Player
	keys   keyState

	cols, rows int
	status     string
}

func NewTerminal(screen tcell.Screen, loop *encounter.Loop, sound sfx.Player) *Terminal {
	t := &Terminal{screen: screen, loop: loop, sound: sound}
	t.cols, t.rows = screen.Size()
	return t
}

// Run returns once the encounter stops or the player hits Ctrl-C.
func (t *Terminal) Run() {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			t.handle(ev)
			if t.keys.exit {
				return
			}
		case now := <-ticker.C:
			t.loop.Step(t.keys.frame(now))
			t.drainEvents()
			if !t.loop.Running() {
				return
			}
			t.draw()
		}
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.keys.press(ev, time.Now())
	case *tcell.EventResize:
		t.cols, t.rows = t.screen.Size()
		t.screen.Sync()
	}
}

func (t *Terminal) drainEvents() {
	evts := t.loop.Events().Drain()
	sfx.PlayEvents(t.sound, evts)
	for _, evt := range evts {
		switch evt.Type {
		case encounter.EventAchievement:
			if a, ok := evt.Data.(encounter.AchievementEvent); ok {
				t.status = "Achievement unlocked: " + a.Name
			}
		case encounter.EventPhase2:
			t.status = "The boss is enraged"
		case encounter.EventGameOver:
			t.status = "Game over"
		}
	}
}

// cell maps a playfield rect onto terminal cells, below the two HUD rows.
func (t *Terminal) cell(r common.Rect) (x0, y0, x1, y1 int) {
	spec := t.loop.Spec().Screen
	rows := max(t.rows-2, 1)
	sx := float64(t.cols) / float64(spec.Width)
	sy := float64(rows) / float64(spec.Height)

	x0 = int(float64(r.X) * sx)
	y0 = int(float64(r.Y)*sy) + 2
	x1 = max(int(float64(r.X+r.Width)*sx), x0+1)
	y1 = max(int(float64(r.Y+r.Height)*sy)+2, y0+1)
	return x0, y0, x1, y1
}

func (t *Terminal) fill(r common.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := t.cell(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (t *Terminal) print(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		t.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (t *Terminal) draw() {
	l := t.loop
	t.screen.Clear()

	st := l.State()
	b := l.Boss()
	hud := fmt.Sprintf("L%d  P1 %06d x%d $%d", st.Level, st.Score[0], st.Lives[0], st.Coins[0])
	if st.Coop {
		hud += fmt.Sprintf("  P2 %06d x%d $%d", st.Score[1], st.Lives[1], st.Coins[1])
	}
	hud += fmt.Sprintf("  BOSS %d/%d %s", b.HP(), b.MaxHP(), b.Phase())
	t.print(0, 0, hud, styleHUD)
	t.print(0, 1, t.status, styleDim)

	for _, u := range l.Formation().Units() {
		if !u.Destroyed() {
			t.fill(u.Bounds(), 'W', styleEscort)
		}
	}

	if b.HP() > 0 {
		style := styleBoss
		if b.Invulnerable() {
			style = styleShield
		}
		t.fill(b.Bounds(), '#', style)
	}

	for slot, s := range l.Ships() {
		if s == nil || s.Destroyed() {
			continue
		}
		t.fill(s.Bounds(), 'A', stylePlayer[slot%len(stylePlayer)])
	}

	for _, p := range l.Projectiles() {
		if p.Team == encounter.TeamPlayer {
			t.fill(p.Bounds(), '|', styleShot)
		} else {
			t.fill(p.Bounds(), 'o', styleEnemyHit)
		}
	}

	for _, it := range l.Items() {
		ch, ok := itemRunes[it.Kind]
		if !ok {
			ch = '?'
		}
		t.fill(it.Bounds(), ch, styleItem)
	}

	mid := t.rows / 2
	switch {
	case !l.InputOpen():
		t.print(t.cols/2, mid, fmt.Sprintf("%d", l.CountdownRemaining()), styleHUD)
	case l.Paused():
		t.print(max(t.cols/2-14, 0), mid, "PAUSED  esc resume  q quit", styleHUD)
	}

	t.screen.Show()
}
