package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/bossfight/common"
	"github.com/milk9111/bossfight/encounter"
	"github.com/milk9111/bossfight/prefabs"
	"github.com/milk9111/bossfight/sfx"
)

const sampleRate = 44100

type GameOptions struct {
	Spec   string
	Coop   bool
	Debug  bool
	Watch  bool
	Seed   int64
	Volume float64
}

type Game struct {
	frames int
	debug  bool

	loop    *encounter.Loop
	input   *Input
	sound   sfx.Player
	watcher *prefabs.Watcher
	bursts  *Bursts
	hud     *HUD
	pauseUI *ebitenui.UI

	// set by the pause menu buttons, consumed by the next Step
	resume bool
	quit   bool

	result encounter.Result
}

func NewGame(opts GameOptions) (*Game, error) {
	spec, err := prefabs.LoadEncounterSpec(opts.Spec)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	loop, err := encounter.New(spec,
		encounter.WithCoop(opts.Coop),
		encounter.WithSeed(seed),
	)
	if err != nil {
		return nil, err
	}

	hud, err := NewHUD()
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:  opts.Debug,
		loop:   loop,
		input:  NewInput(),
		sound:  sfx.Nop{},
		bursts: NewBursts(),
		hud:    hud,
	}
	if opts.Volume > 0 {
		g.sound = sfx.NewEbitenPlayer(audio.NewContext(sampleRate), opts.Volume)
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.WatchDirs()...)
		if err != nil {
			log.Printf("game: watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	log.Printf("game: %s loaded, seed %d, coop %t", spec.Name, seed, opts.Coop)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.applyChanges()

	in := g.input.Poll()
	if g.resume {
		in.Pause = true
		g.resume = false
	}
	if g.quit {
		in.Quit = true
		g.quit = false
	}

	wasPaused := g.loop.Paused()
	g.loop.Step(in)

	evts := g.loop.Events().Drain()
	sfx.PlayEvents(g.sound, evts)
	g.bursts.Add(evts)
	g.bursts.Update()

	if wasPaused && g.loop.Paused() {
		g.pauseUI.Update()
	}

	if !g.loop.Running() {
		g.result = g.loop.Finish()
		return ebiten.Termination
	}
	return nil
}

// applyChanges drains the prefab watcher. Retuning happens here, between
// frames, so the loop never sees a half applied spec.
func (g *Game) applyChanges() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeSpec:
		spec, err := prefabs.LoadEncounterSpec(change.Path)
		if err != nil {
			log.Printf("game: reload %s: %v", change.Path, err)
			return
		}
		if err := g.loop.Retune(spec); err != nil {
			log.Printf("game: %v", err)
		}
	case prefabs.ChangeScript:
		table, err := encounter.LoadDropTable(change.Path)
		if err != nil {
			log.Printf("game: reload %s: %v", change.Path, err)
			return
		}
		g.loop.SetDropTable(table)
		log.Printf("game: drop table %s reloaded", table.Name())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawEncounter(screen, g.loop)
	g.bursts.Draw(screen)
	g.hud.Draw(screen, g.loop)

	if g.loop.Paused() {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		drawHitboxes(screen, g.loop)
		g.hud.DrawDebug(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Pool: %d", g.frames, ebiten.ActualFPS(), len(g.loop.Projectiles())))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Result is valid once RunGame has returned.
func (g *Game) Result() encounter.Result {
	return g.result
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}
