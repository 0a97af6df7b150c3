package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/fonts"
	"github.com/automoto/neon-dodge/snapshot"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const gridSpacing = 40

func drawGrid(dst *ebiten.Image, width, height float64) {
	for x := 0.0; x <= width; x += gridSpacing {
		vector.StrokeLine(dst, float32(x), 0, float32(x), float32(height), 1, cfg.GridLine, false)
	}
	for y := 0.0; y <= height; y += gridSpacing {
		vector.StrokeLine(dst, 0, float32(y), float32(width), float32(y), 1, cfg.GridLine, false)
	}
}

func drawWorld(dst *ebiten.Image, frame snapshot.Frame) {
	for _, p := range frame.Particles {
		fillCircle(dst, p.Circle, fade(p.Color, p.Fade))
	}

	if frame.Orb != nil {
		fillCircle(dst, *frame.Orb, cfg.NeonGreen)
		strokeCircle(dst, snapshot.Circle{Pos: frame.Orb.Pos, Radius: frame.Orb.Radius + 4}, 1, fade(cfg.NeonGreen, 0.5))
	}

	for _, p := range frame.PowerUps {
		c := powerUpColor(p.Kind)
		strokeCircle(dst, p.Circle, 2, c)
		label := powerUpLabel(p.Kind)
		text.Draw(dst, label, fonts.Small.Get(), int(p.Pos.X)-4, int(p.Pos.Y)+4, c)
	}

	for _, en := range frame.Enemies {
		c := enemyColor(en.Kind, en.Variant)
		if en.Kind.IsBoss() {
			fillCircle(dst, en.Circle, fade(c, 0.35))
			strokeCircle(dst, en.Circle, 3, c)
			hp := fmt.Sprintf("%d", en.HP)
			text.Draw(dst, hp, fonts.Regular.Get(), int(en.Pos.X)-len(hp)*4, int(en.Pos.Y)+5, cfg.White)
			continue
		}
		fillCircle(dst, en.Circle, c)
		// Tier rings
		for i := 0; i < en.Tier; i++ {
			ring := en.Circle
			ring.Radius += float64(3 + 3*i)
			strokeCircle(dst, ring, 1, fade(c, 0.6))
		}
	}

	for _, b := range frame.Bullets {
		fillCircle(dst, b.Circle, bulletColor(b))
	}

	if frame.Player != nil {
		drawPlayer(dst, *frame.Player)
	}
}

func drawPlayer(dst *ebiten.Image, p snapshot.Player) {
	c := cfg.NeonCyan
	if p.Invulnerable {
		c = fade(c, 0.45)
	}
	fillCircle(dst, p.Circle, c)

	if p.HasShield {
		ring := p.Circle
		ring.Radius += 6
		shield := fade(cfg.NeonBlue, 0.4)
		if p.ShieldReady {
			shield = cfg.NeonBlue
		}
		strokeCircle(dst, ring, 2, shield)
	}
}

func fillCircle(dst *ebiten.Image, c snapshot.Circle, clr color.Color) {
	vector.FillCircle(dst, float32(c.Pos.X), float32(c.Pos.Y), float32(c.Radius), clr, true)
}

func strokeCircle(dst *ebiten.Image, c snapshot.Circle, width float32, clr color.Color) {
	vector.StrokeCircle(dst, float32(c.Pos.X), float32(c.Pos.Y), float32(c.Radius), width, clr, true)
}

func enemyColor(kind components.EnemyKind, variant components.BossVariant) color.RGBA {
	switch kind {
	case components.EnemyNormal:
		return cfg.NeonPink
	case components.EnemyZigzag:
		return cfg.NeonOrange
	case components.EnemyHoming:
		return cfg.NeonPurple
	case components.EnemyBoss:
		if variant == components.BossShooter {
			return cfg.NeonYellow
		}
		return cfg.NeonRed
	case components.EnemyMegaBoss:
		return cfg.NeonRed
	}
	return cfg.Grey
}

func bulletColor(b snapshot.Bullet) color.RGBA {
	switch {
	case b.Origin == components.OriginPlayer:
		return cfg.NeonYellow
	case b.Homing:
		return cfg.NeonPurple
	default:
		return cfg.NeonRed
	}
}

func powerUpColor(kind components.PowerUpKind) color.RGBA {
	switch kind {
	case components.PowerUpRapid:
		return cfg.NeonYellow
	case components.PowerUpSpread:
		return cfg.NeonOrange
	case components.PowerUpShield:
		return cfg.NeonBlue
	case components.PowerUpSpeed:
		return cfg.NeonGreen
	case components.PowerUpPierce:
		return cfg.NeonPink
	case components.PowerUpKindCount:
	}
	return cfg.White
}

// powerUpLabel is the single letter drawn inside a power-up
func powerUpLabel(kind components.PowerUpKind) string {
	if kind < 0 || kind >= components.PowerUpKindCount {
		return "?"
	}
	return kind.String()[:1]
}
