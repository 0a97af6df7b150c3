// Package snapshot holds the read-only draw data produced after each step.
// Nothing in here points back into the simulation, so a renderer may keep a
// Frame for as long as it likes.
package snapshot

import (
	"image/color"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
)

type Frame struct {
	Mode   components.GameMode
	Width  float64
	Height float64

	Player    *Player // nil outside a run
	Enemies   []Enemy
	Bullets   []Bullet
	PowerUps  []PowerUp
	Orb       *Circle
	Particles []Particle

	HUD      HUD
	Shop     *Shop // nil while the shop is closed
	Settings Settings

	Shake  gamemath.Vec2
	Sounds []cfg.SoundID
}

type Circle struct {
	Pos    gamemath.Vec2
	Radius float64
}

type Player struct {
	Circle
	Vel          gamemath.Vec2
	Invulnerable bool
	HasShield    bool
	ShieldReady  bool
}

type Enemy struct {
	Circle
	Kind    components.EnemyKind
	Variant components.BossVariant
	Tier    int
	HP      int
}

type Bullet struct {
	Circle
	Origin components.BulletOrigin
	Homing bool
}

type PowerUp struct {
	Circle
	Kind components.PowerUpKind
}

type Particle struct {
	Circle
	Color color.RGBA
	Fade  float64 // 1 when spawned, 0 when expired
}

// BuffTimer is an active buff and its remaining seconds
type BuffTimer struct {
	Kind      components.PowerUpKind
	Remaining float64
}

type HUD struct {
	Score       int
	HighScore   int
	Coins       int
	Kills       int
	Level       int
	XP          int
	XPToNext    int
	Lives       int
	LivesRatio  float64
	ShieldRatio float64
	Buffs       []BuffTimer
	Elapsed     float64
	EnemyLevel  int
	Difficulty  string
}

type ShopRow struct {
	Key        int // buy key, 1-based
	Name       string
	Cost       int
	Affordable bool
}

type Shop struct {
	Wallet int
	Rows   []ShopRow
}

type SettingRow struct {
	Label    string
	Value    string
	Selected bool
}

type Settings struct {
	Rows []SettingRow
}
