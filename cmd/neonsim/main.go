package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/neon-dodge/assets"
	"github.com/automoto/neon-dodge/engine"
	"github.com/automoto/neon-dodge/sim"
	"github.com/automoto/neon-dodge/systems"
)

func main() {
	seed := flag.Uint64("seed", 1, "Random seed")
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (steps per simulated second)")
	seconds := flag.Float64("seconds", 300, "Longest run to simulate, in simulated seconds")
	realtime := flag.Bool("realtime", false, "Pace ticks against the wall clock")
	arenaName := flag.String("arena", "", "Bundled arena to run (default: first by name)")
	save := flag.Bool("save", false, "Persist the high score to the player's save data")
	flag.Parse()

	opts := engine.Options{Seed: *seed}
	if *arenaName != "" {
		a, err := assets.LoadArena(*arenaName)
		if err != nil {
			log.Fatalf("Failed to load arena: %v", err)
		}
		opts.Arena = a
	}
	if *save {
		store, err := systems.OpenStore()
		if err != nil {
			log.Fatalf("Failed to open save data: %v", err)
		}
		opts.Store = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := sim.NewRunner(engine.New(opts), *tickRate)
	runner.Realtime = *realtime

	log.Printf("Simulating up to %.0fs (seed %d, tick rate %d/s)", *seconds, *seed, *tickRate)
	res := runner.Run(ctx, int(*seconds*float64(*tickRate)))

	log.Printf("Ticks %d  survived %.1fs  score %d  best %d  kills %d  level %d  game over %v",
		res.Ticks, res.Elapsed, res.Score, res.HighScore, res.Kills, res.Level, res.GameOver)
}
