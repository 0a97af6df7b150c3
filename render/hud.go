package render

import (
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/fonts"
	"github.com/automoto/neon-dodge/snapshot"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudBarWidth  = 160
	hudBarHeight = 8
	hudMargin    = 10
	hudLine      = 18
)

func drawHUD(screen *ebiten.Image, hud snapshot.HUD) {
	face := fonts.Regular.Get()

	y := hudMargin + 14
	for _, line := range hudLines(hud) {
		text.Draw(screen, line, face, hudMargin, y, cfg.White)
		y += hudLine
	}

	y += 2
	drawBar(screen, hudMargin, y, hud.LivesRatio, cfg.NeonPink)
	y += hudBarHeight + 4
	drawBar(screen, hudMargin, y, xpRatio(hud), cfg.NeonGreen)
	if hud.ShieldRatio > 0 {
		y += hudBarHeight + 4
		drawBar(screen, hudMargin, y, hud.ShieldRatio, cfg.NeonBlue)
	}

	// Buff timers along the right edge
	if buffs := buffLine(hud.Buffs); buffs != "" {
		small := fonts.Small.Get()
		w := text.BoundString(small, buffs).Dx()
		text.Draw(screen, buffs, small, screen.Bounds().Dx()-w-hudMargin, hudMargin+12, cfg.NeonYellow)
	}
}

func drawBar(screen *ebiten.Image, x, y int, ratio float64, fill color.RGBA) {
	ratio = max(0, min(1, ratio))
	vector.FillRect(screen, float32(x), float32(y), hudBarWidth, hudBarHeight, cfg.ButtonOff, false)
	vector.FillRect(screen, float32(x), float32(y), float32(hudBarWidth*ratio), hudBarHeight, fill, false)
}

// hudLines are the text rows of the top-left panel
func hudLines(hud snapshot.HUD) []string {
	return []string{
		fmt.Sprintf("Score %d   Best %d", hud.Score, hud.HighScore),
		fmt.Sprintf("Coins %d   Kills %d", hud.Coins, hud.Kills),
		fmt.Sprintf("Lv %d   Lives %d", hud.Level, hud.Lives),
		fmt.Sprintf("%s   Threat %d   %s", formatClock(hud.Elapsed), hud.EnemyLevel, hud.Difficulty),
	}
}

func xpRatio(hud snapshot.HUD) float64 {
	if hud.XPToNext <= 0 {
		return 0
	}
	return float64(hud.XP) / float64(hud.XPToNext)
}

// buffLine lists the active buffs with whole seconds left
func buffLine(buffs []snapshot.BuffTimer) string {
	parts := make([]string, 0, len(buffs))
	for _, b := range buffs {
		parts = append(parts, fmt.Sprintf("%s %ds", b.Kind, int(b.Remaining+0.999)))
	}
	return strings.Join(parts, "  ")
}

// formatClock renders seconds as m:ss
func formatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
