package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/neon-dodge/assets"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/engine"
	"github.com/automoto/neon-dodge/input"
	"github.com/automoto/neon-dodge/render"
	"github.com/automoto/neon-dodge/snapshot"
	"github.com/automoto/neon-dodge/sound"
	"github.com/automoto/neon-dodge/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs the whole game: title, settings, the run and game over are
// all modes of one engine.
type ArenaScene struct {
	opts engine.Options
	once sync.Once

	engine   *engine.Engine
	poller   input.Poller
	renderer *render.Renderer
	mixer    *sound.Mixer
	shopUI   *ui.ShopUI

	frame snapshot.Frame
}

// NewArenaScene creates the scene. Nothing is built until the first Update.
func NewArenaScene(opts engine.Options) *ArenaScene {
	return &ArenaScene{opts: opts}
}

func (as *ArenaScene) Update() error {
	as.once.Do(as.configure)

	in := as.poller.Poll()
	if as.frame.Shop != nil {
		as.shopUI.Update()
		in.Commands = append(in.Commands, as.shopUI.Drain()...)
	}

	as.engine.Step(1/float64(cfg.C.TPS), in)
	as.frame = as.engine.Snapshot()

	as.mixer.Apply(as.engine.Record())
	as.mixer.Play(as.frame.Sounds)
	as.shopUI.Sync(as.frame.Shop)

	if as.engine.Quit() {
		as.mixer.Close()
		return ebiten.Termination
	}
	return nil
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.engine == nil {
		return
	}
	as.engine.ECS().Draw(screen)
}

// Layout reports the logical screen size, which follows the arena
func (as *ArenaScene) Layout() (int, int) {
	if as.frame.Width > 0 && as.frame.Height > 0 {
		return int(as.frame.Width), int(as.frame.Height)
	}
	if as.opts.Arena.Width > 0 && as.opts.Arena.Height > 0 {
		return int(as.opts.Arena.Width), int(as.opts.Arena.Height)
	}
	return cfg.C.Width, cfg.C.Height
}

func (as *ArenaScene) configure() {
	as.engine = engine.New(as.opts)
	as.frame = as.engine.Snapshot()

	as.renderer = render.New()
	as.shopUI = ui.NewShopUI()
	as.mixer = sound.NewMixer(as.engine.Record())

	// Renderers (the shop panel draws on top of the arena)
	as.engine.ECS().AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) {
		as.renderer.Draw(screen, as.frame)
	})
	as.engine.ECS().AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) {
		if as.frame.Shop != nil {
			as.shopUI.Draw(screen)
		}
	})

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: glow shader unavailable: %v", err)
		assets.GlowShader = nil
	}
}
