package sim

import (
	"context"
	"testing"

	"github.com/automoto/neon-dodge/components"
	"github.com/automoto/neon-dodge/engine"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/snapshot"
)

func playingFrame(player gamemath.Vec2) snapshot.Frame {
	return snapshot.Frame{
		Mode:   components.ModePlaying,
		Width:  900,
		Height: 600,
		Player: &snapshot.Player{Circle: snapshot.Circle{Pos: player, Radius: 20}},
	}
}

func TestSteerFleesEnemy(t *testing.T) {
	f := playingFrame(gamemath.V(450, 300))
	f.Enemies = []snapshot.Enemy{{Circle: snapshot.Circle{Pos: gamemath.V(500, 300), Radius: 16}}}

	got := Steer(f)
	if got.X >= 0 {
		t.Errorf("Expected to move left away from the enemy, got %v", got)
	}
}

func TestSteerIgnoresDistantThreats(t *testing.T) {
	f := playingFrame(gamemath.V(450, 300))
	f.Enemies = []snapshot.Enemy{{Circle: snapshot.Circle{Pos: gamemath.V(450+DangerRadius+1, 300)}}}

	if got := Steer(f); !got.IsZero() {
		t.Errorf("Expected no steering, got %v", got)
	}
}

func TestSteerIgnoresPlayerBullets(t *testing.T) {
	f := playingFrame(gamemath.V(450, 300))
	f.Bullets = []snapshot.Bullet{{Circle: snapshot.Circle{Pos: gamemath.V(460, 300)}, Origin: components.OriginPlayer}}

	if got := Steer(f); !got.IsZero() {
		t.Errorf("Expected player bullets to be ignored, got %v", got)
	}
}

func TestSteerTowardOrb(t *testing.T) {
	f := playingFrame(gamemath.V(450, 300))
	f.Orb = &snapshot.Circle{Pos: gamemath.V(450, 100), Radius: 8}

	got := Steer(f)
	if got.Y >= 0 || got.X != 0 {
		t.Errorf("Expected to move straight up toward the orb, got %v", got)
	}
}

func TestSteerAwayFromWalls(t *testing.T) {
	f := playingFrame(gamemath.V(10, 590))
	got := Steer(f)
	if got.X <= 0 || got.Y >= 0 {
		t.Errorf("Expected to move away from the bottom-left corner, got %v", got)
	}
}

func TestCheapestAffordable(t *testing.T) {
	shop := &snapshot.Shop{Rows: []snapshot.ShopRow{
		{Cost: 30, Affordable: true},
		{Cost: 25, Affordable: false},
		{Cost: 25, Affordable: true},
		{Cost: 25, Affordable: true},
	}}
	i, ok := CheapestAffordable(shop)
	if !ok || i != 2 {
		t.Errorf("Expected row 2, got %d (ok=%v)", i, ok)
	}

	if _, ok := CheapestAffordable(&snapshot.Shop{Rows: []snapshot.ShopRow{{Cost: 5}}}); ok {
		t.Error("Expected nothing affordable")
	}
}

func TestAutopilotStartsFromTitle(t *testing.T) {
	var a Autopilot
	_, cmds := a.Next(snapshot.Frame{Mode: components.ModeTitle})
	if len(cmds) != 1 || cmds[0].Kind != components.CmdStart {
		t.Errorf("Expected a start command, got %v", cmds)
	}
}

func TestAutopilotBuysThenClosesShop(t *testing.T) {
	var a Autopilot
	f := playingFrame(gamemath.V(450, 300))
	f.Shop = &snapshot.Shop{Wallet: 30, Rows: []snapshot.ShopRow{{Cost: 25, Affordable: true}}}

	_, cmds := a.Next(f)
	if len(cmds) != 2 {
		t.Fatalf("Expected buy then close, got %v", cmds)
	}
	if cmds[0].Kind != components.CmdBuy || cmds[0].Index != 0 {
		t.Errorf("Expected buy of row 0, got %+v", cmds[0])
	}
	if cmds[1].Kind != components.CmdToggleShop {
		t.Errorf("Expected shop toggle, got %+v", cmds[1])
	}
}

func TestRunnerStopsAtTickLimit(t *testing.T) {
	r := NewRunner(engine.New(engine.Options{Seed: 7}), 60)
	res := r.Run(context.Background(), 30)

	if res.GameOver {
		t.Fatal("Expected the run to survive half a second")
	}
	if res.Ticks != 30 {
		t.Errorf("Expected 30 ticks, got %d", res.Ticks)
	}
	// The first tick only leaves the title screen
	if res.Elapsed <= 0 || res.Elapsed > 0.6 {
		t.Errorf("Expected elapsed near half a second, got %v", res.Elapsed)
	}
}

func TestRunnerHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(engine.New(engine.Options{Seed: 7}), 60)
	if res := r.Run(ctx, 1000); res.Ticks != 0 {
		t.Errorf("Expected no ticks after cancel, got %d", res.Ticks)
	}
}

func TestRunnerEndsOnGameOver(t *testing.T) {
	r := NewRunner(engine.New(engine.Options{Seed: 3}), 30)
	res := r.Run(context.Background(), 30*60*30)

	if !res.GameOver {
		t.Skipf("autopilot survived %d ticks", res.Ticks)
	}
	if res.HighScore < res.Score {
		t.Errorf("Expected high score %d to cover final score %d", res.HighScore, res.Score)
	}
}
