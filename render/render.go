// Package render draws a snapshot.Frame. It never reads the simulation
// directly, so any frame can be redrawn.
package render

import (
	"image/color"

	"github.com/automoto/neon-dodge/assets"
	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/snapshot"
	"github.com/hajimehoshi/ebiten/v2"
)

// GlowIntensity scales the halo added by the glow pass
const GlowIntensity = 0.6

// Renderer draws the playfield into an offscreen image, then composites it
// with the shake offset and the glow pass.
type Renderer struct {
	world   *ebiten.Image
	worldOp *ebiten.DrawImageOptions
}

func New() *Renderer {
	return &Renderer{worldOp: &ebiten.DrawImageOptions{}}
}

// Draw renders one frame onto screen
func (r *Renderer) Draw(screen *ebiten.Image, frame snapshot.Frame) {
	screen.Fill(cfg.Background)

	switch frame.Mode {
	case components.ModeTitle:
		drawGrid(screen, frame.Width, frame.Height)
		drawTitle(screen, frame)
		return
	case components.ModeSettings:
		drawGrid(screen, frame.Width, frame.Height)
		drawSettings(screen, frame)
		return
	case components.ModePlaying, components.ModeGameOver:
	}

	world := r.worldImage(int(frame.Width), int(frame.Height))
	world.Clear()
	drawGrid(world, frame.Width, frame.Height)
	drawWorld(world, frame)

	r.composite(screen, world, frame)
	drawHUD(screen, frame.HUD)

	if frame.Mode == components.ModeGameOver {
		drawGameOver(screen, frame)
	}
}

func (r *Renderer) worldImage(w, h int) *ebiten.Image {
	if w <= 0 || h <= 0 {
		w, h = cfg.C.Width, cfg.C.Height
	}
	if r.world != nil {
		b := r.world.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return r.world
		}
		r.world.Deallocate()
	}
	r.world = ebiten.NewImage(w, h)
	return r.world
}

func (r *Renderer) composite(screen, world *ebiten.Image, frame snapshot.Frame) {
	if assets.GlowShader != nil {
		b := world.Bounds()
		op := &ebiten.DrawRectShaderOptions{}
		op.GeoM.Translate(frame.Shake.X, frame.Shake.Y)
		op.Images[0] = world
		op.Uniforms = map[string]any{
			"Intensity": float32(GlowIntensity),
		}
		screen.DrawRectShader(b.Dx(), b.Dy(), assets.GlowShader, op)
		return
	}

	r.worldOp.GeoM.Reset()
	r.worldOp.GeoM.Translate(frame.Shake.X, frame.Shake.Y)
	screen.DrawImage(world, r.worldOp)
}

// fade scales a premultiplied color by f in [0, 1]
func fade(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
