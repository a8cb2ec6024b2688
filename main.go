package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bossfight/common"
	"github.com/milk9111/bossfight/config"
	"github.com/milk9111/bossfight/prefabs"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal(err)
	}

	coop := flag.Bool("coop", config.Bool("COOP", false), "two player co-op")
	debug := flag.Bool("debug", config.Bool("DEBUG", false), "draw hitboxes and frame stats")
	watch := flag.Bool("watch", config.Bool("WATCH", false), "reload prefabs/*.yaml and scripts/*.tengo on change")
	seed := flag.Int64("seed", config.Int64("SEED", 0), "random seed, 0 picks one from the clock")
	volume := flag.Float64("volume", config.Float("VOLUME", 0.5), "sound volume 0..1, 0 disables audio")
	specName := flag.String("spec", config.String("SPEC", prefabs.EncounterFile), "encounter prefab")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth*2, common.BaseHeight*2)
	ebiten.SetWindowTitle("bossfight")

	game, err := NewGame(GameOptions{
		Spec:   *specName,
		Coop:   *coop,
		Debug:  *debug,
		Watch:  *watch,
		Seed:   *seed,
		Volume: *volume,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}

	res := game.Result()
	log.Printf("bossfight: %s, score %d, lives %d, clear time %s", res.Outcome, res.Score, res.Lives, res.ClearTime)
	game.Close()
	os.Exit(res.ReturnCode)
}
