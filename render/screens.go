package render

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/fonts"
	"github.com/automoto/neon-dodge/snapshot"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

func drawTitle(screen *ebiten.Image, frame snapshot.Frame) {
	h := screen.Bounds().Dy()

	drawCentered(screen, "NEON DODGE", fonts.Title.Get(), h/3, cfg.NeonCyan)
	drawCentered(screen, fmt.Sprintf("High Score %d", frame.HUD.HighScore), fonts.Bold.Get(), h/3+50, cfg.NeonYellow)

	hints := []string{
		"SPACE  Start",
		"S  Settings",
		"ESC  Quit",
	}
	y := h/2 + 40
	for _, hint := range hints {
		drawCentered(screen, hint, fonts.Regular.Get(), y, cfg.Grey)
		y += 24
	}
}

func drawSettings(screen *ebiten.Image, frame snapshot.Frame) {
	h := screen.Bounds().Dy()

	drawCentered(screen, "SETTINGS", fonts.Title.Get(), h/4, cfg.NeonPink)

	y := h/4 + 70
	for _, row := range frame.Settings.Rows {
		clr := cfg.Grey
		line := fmt.Sprintf("%s   %s", row.Label, row.Value)
		if row.Selected {
			clr = cfg.NeonCyan
			line = fmt.Sprintf("< %s >", line)
		}
		drawCentered(screen, line, fonts.Bold.Get(), y, clr)
		y += 36
	}

	drawCentered(screen, "UP/DOWN Select   LEFT/RIGHT Change   ESC Back", fonts.Small.Get(), h-24, cfg.Grey)
}

func drawGameOver(screen *ebiten.Image, frame snapshot.Frame) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), cfg.PanelFill, false)

	h := b.Dy()
	drawCentered(screen, "GAME OVER", fonts.Title.Get(), h/3, cfg.NeonRed)

	lines := []string{
		fmt.Sprintf("Score %d", frame.HUD.Score),
		fmt.Sprintf("High Score %d", frame.HUD.HighScore),
		fmt.Sprintf("Kills %d   Survived %s", frame.HUD.Kills, formatClock(frame.HUD.Elapsed)),
	}
	y := h/3 + 56
	for _, line := range lines {
		drawCentered(screen, line, fonts.Bold.Get(), y, cfg.White)
		y += 30
	}

	drawCentered(screen, "R  Restart   ESC  Quit", fonts.Regular.Get(), y+20, cfg.Grey)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	w := text.BoundString(face, s).Dx()
	x := (screen.Bounds().Dx() - w) / 2
	text.Draw(screen, s, face, x, y, clr)
}
