package sim

import (
	"github.com/automoto/neon-dodge/components"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/snapshot"
)

// Autopilot tuning
const (
	// DangerRadius is how far from the player enemies and enemy shots repel it
	DangerRadius = 160.0
	// OrbPull weighs the orb against the sum of the threats
	OrbPull = 0.6
	// WallMargin is the band along each wall that pushes the player inward
	WallMargin = 60.0
	// ShopEvery is how many ticks apart the autopilot checks the shop
	ShopEvery = 120
)

// Autopilot plays the game from snapshots alone: it flees nearby threats,
// drifts toward the orb and spends coins on the cheapest affordable upgrade.
type Autopilot struct {
	tick int
}

// Next returns the input for the frame after f
func (a *Autopilot) Next(f snapshot.Frame) (gamemath.Vec2, []components.Command) {
	a.tick++

	switch f.Mode {
	case components.ModeTitle:
		return gamemath.Vec2{}, []components.Command{{Kind: components.CmdStart}}
	case components.ModeSettings:
		return gamemath.Vec2{}, []components.Command{{Kind: components.CmdBack}}
	case components.ModeGameOver:
		return gamemath.Vec2{}, nil
	case components.ModePlaying:
	}

	if f.Shop != nil {
		cmds := []components.Command{}
		if i, ok := CheapestAffordable(f.Shop); ok {
			cmds = append(cmds, components.Command{Kind: components.CmdBuy, Index: i})
		}
		return gamemath.Vec2{}, append(cmds, components.Command{Kind: components.CmdToggleShop})
	}

	var cmds []components.Command
	if a.tick%ShopEvery == 0 && f.HUD.Coins > 0 {
		cmds = append(cmds, components.Command{Kind: components.CmdToggleShop})
	}
	return Steer(f), cmds
}

// Steer sums a repulsion from every threat inside DangerRadius, a pull
// toward the orb and a push away from walls
func Steer(f snapshot.Frame) gamemath.Vec2 {
	if f.Player == nil {
		return gamemath.Vec2{}
	}
	pos := f.Player.Pos

	var flee gamemath.Vec2
	repel := func(from gamemath.Vec2) {
		away := pos.Sub(from)
		d := away.Length()
		if d >= DangerRadius {
			return
		}
		weight := (DangerRadius - d) / DangerRadius
		flee = flee.Add(away.NormalizeOr(gamemath.V(1, 0)).Scale(weight))
	}
	for _, en := range f.Enemies {
		repel(en.Pos)
	}
	for _, b := range f.Bullets {
		if b.Origin == components.OriginEnemy {
			repel(b.Pos)
		}
	}

	var pull gamemath.Vec2
	if f.Orb != nil {
		pull = f.Orb.Pos.Sub(pos).Normalize().Scale(OrbPull)
	}

	var wall gamemath.Vec2
	if pos.X < WallMargin {
		wall.X++
	}
	if pos.X > f.Width-WallMargin {
		wall.X--
	}
	if pos.Y < WallMargin {
		wall.Y++
	}
	if pos.Y > f.Height-WallMargin {
		wall.Y--
	}

	return flee.Add(pull).Add(wall)
}

// CheapestAffordable returns the index of the lowest priced row the wallet
// covers. Ties go to the earlier row.
func CheapestAffordable(shop *snapshot.Shop) (int, bool) {
	best, found := 0, false
	for i, row := range shop.Rows {
		if !row.Affordable {
			continue
		}
		if !found || row.Cost < shop.Rows[best].Cost {
			best, found = i, true
		}
	}
	return best, found
}
