// Command bossterm runs the boss encounter in a terminal.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/bossfight/config"
	"github.com/milk9111/bossfight/encounter"
	"github.com/milk9111/bossfight/prefabs"
	"github.com/milk9111/bossfight/sfx"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal(err)
	}

	coop := flag.Bool("coop", config.Bool("COOP", false), "two player co-op")
	seed := flag.Int64("seed", config.Int64("SEED", 0), "random seed, 0 picks one from the clock")
	mute := flag.Bool("mute", config.Bool("MUTE", false), "disable sound")
	specName := flag.String("spec", config.String("SPEC", prefabs.EncounterFile), "encounter prefab")
	logFile := flag.String("log", config.String("LOG", "bossterm.log"), "log file, the terminal is busy drawing")
	flag.Parse()

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	log.SetOutput(f)

	spec, err := prefabs.LoadEncounterSpec(*specName)
	if err != nil {
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	loop, err := encounter.New(spec,
		encounter.WithCoop(*coop),
		encounter.WithSeed(*seed),
		encounter.WithLogger(log.Default()),
	)
	if err != nil {
		log.Fatal(err)
	}

	var sound sfx.Player = sfx.Nop{}
	if !*mute {
		sp, err := sfx.NewSpeakerPlayer()
		if err != nil {
			log.Printf("bossterm: audio disabled: %v", err)
		} else {
			defer sp.Close()
			sound = sp
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	term := NewTerminal(screen, loop, sound)
	term.Run()
	screen.Fini()

	res := loop.Finish()
	log.Printf("bossterm: %s, score %d, lives %d, clear time %s", res.Outcome, res.Score, res.Lives, res.ClearTime)
}
