package systems

import (
	"testing"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
)

func TestPlayerStaysInsideArena(t *testing.T) {
	intents := []gamemath.Vec2{
		gamemath.V(-1, 0), gamemath.V(1, 0), gamemath.V(0, -1), gamemath.V(0, 1),
		gamemath.V(1, 1), gamemath.V(-1, -1),
	}

	for _, intent := range intents {
		player := components.PlayerData{BaseSpeed: cfg.Player.BaseSpeed * 3, SpeedMult: 1}
		body := components.BodyData{Pos: gamemath.V(testWidth/2, testHeight/2), Radius: cfg.Player.Radius}

		for i := 0; i < 600; i++ {
			stepPlayer(&player, &body, intent, testDT, testWidth, testHeight)
			r := body.Radius
			if body.Pos.X < r || body.Pos.X > testWidth-r || body.Pos.Y < r || body.Pos.Y > testHeight-r {
				t.Fatalf("Player left the arena at frame %d with intent %v: %v", i, intent, body.Pos)
			}
		}
	}
}

func TestPlayerTimersDecay(t *testing.T) {
	player := components.PlayerData{IFrames: testDT / 2, FireTimer: 1}
	body := components.BodyData{Pos: gamemath.V(100, 100), Radius: cfg.Player.Radius}

	stepPlayer(&player, &body, gamemath.Vec2{}, testDT, testWidth, testHeight)

	if player.IFrames != 0 {
		t.Errorf("Expected iframes floored at 0, got %v", player.IFrames)
	}
	if player.FireTimer >= 1 {
		t.Errorf("Expected fire timer to decay, got %v", player.FireTimer)
	}
}

func TestShieldRegeneratesOnlyWhenOwned(t *testing.T) {
	body := components.BodyData{Pos: gamemath.V(100, 100), Radius: cfg.Player.Radius}

	without := components.PlayerData{}
	stepPlayer(&without, &body, gamemath.Vec2{}, 1, testWidth, testHeight)
	if without.ShieldCharge != 0 {
		t.Errorf("Expected no regen without a shield, got %v", without.ShieldCharge)
	}

	with := components.PlayerData{HasShield: true}
	for i := 0; i < 20; i++ {
		stepPlayer(&with, &body, gamemath.Vec2{}, 1, testWidth, testHeight)
	}
	if with.ShieldCharge != cfg.Player.ShieldMax {
		t.Errorf("Expected charge capped at %v, got %v", cfg.Player.ShieldMax, with.ShieldCharge)
	}
	if !shieldReady(&with) {
		t.Errorf("Expected a full shield to be ready")
	}
}

func TestGainXPLevelsUp(t *testing.T) {
	p := components.PlayerData{Level: 1, XPPerLevel: 100}
	p.GainXP(250)
	// 100 for level 2, 200 more needed for level 3
	if p.Level != 2 || p.XP != 150 {
		t.Errorf("Expected level 2 with 150 xp, got level %d with %d xp", p.Level, p.XP)
	}
	p.GainXP(50)
	if p.Level != 3 || p.XP != 0 {
		t.Errorf("Expected level 3 with 0 xp, got level %d with %d xp", p.Level, p.XP)
	}
}
