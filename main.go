package main

import (
	"errors"
	"flag"
	"log"

	"github.com/automoto/neon-dodge/assets"
	"github.com/automoto/neon-dodge/components"
	"github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/engine"
	"github.com/automoto/neon-dodge/fonts"
	"github.com/automoto/neon-dodge/scenes"
	"github.com/automoto/neon-dodge/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout() (int, int)
}

type Game struct {
	scene Scene
}

func NewGame(opts engine.Options) *Game {
	return &Game{scene: scenes.NewArenaScene(opts)}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.scene.Layout()
}

func main() {
	arenaName := flag.String("arena", "", "bundled arena to play (default: first by name)")
	seed := flag.Uint64("seed", 0, "fixed random seed (0 picks one)")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	opts := engine.Options{Seed: *seed}

	a, err := assets.LoadArena(*arenaName)
	switch {
	case errors.Is(err, assets.ErrUnknownArena):
		log.Fatal(err)
	case err != nil:
		log.Printf("Warning: Could not load arenas, using the default playfield: %v", err)
	default:
		opts.Arena = a
	}

	// Initialize persistence; without it the record lives in memory only
	if store, err := systems.OpenStore(); err == nil {
		opts.Store = store
	}

	w, h := windowSize(opts.Arena)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Neon Dodge")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func windowSize(a components.ArenaData) (int, int) {
	width, height := float64(config.C.Width), float64(config.C.Height)
	if a.Width > 0 && a.Height > 0 {
		width, height = a.Width, a.Height
	}
	return int(width * config.C.WindowScale), int(height * config.C.WindowScale)
}
