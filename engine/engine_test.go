package engine

import (
	"testing"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/systems"
	"github.com/automoto/neon-dodge/systems/factory"
	"github.com/automoto/neon-dodge/tags"
	"github.com/yohamta/donburi"
)

const dt = 1.0 / 120

type memStore struct {
	items map[string][]byte
}

func (m *memStore) LoadItem(key string) ([]byte, error) { return m.items[key], nil }

func (m *memStore) SaveItem(key string, data []byte) error {
	m.items[key] = append([]byte(nil), data...)
	return nil
}

func start(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Seed == 0 {
		opts.Seed = 7
	}
	g := New(opts)
	g.Step(dt, Frame{Commands: []components.Command{{Kind: components.CmdStart}}})
	if g.Mode() != components.ModePlaying {
		t.Fatalf("Expected Playing after start, got %v", g.Mode())
	}
	return g
}

func (g *Engine) player(t *testing.T) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(g.ecs.World)
	if !ok {
		t.Fatalf("Expected a player")
	}
	return entry
}

func TestNewStartsOnTitle(t *testing.T) {
	g := New(Options{Seed: 1})
	if g.Mode() != components.ModeTitle {
		t.Errorf("Expected Title, got %v", g.Mode())
	}

	g.Step(dt, Frame{})
	frame := g.Snapshot()
	if frame.Player != nil {
		t.Errorf("Expected no player on the title screen")
	}
	if frame.Width != float64(cfg.C.Width) || frame.Height != float64(cfg.C.Height) {
		t.Errorf("Expected default arena size, got %vx%v", frame.Width, frame.Height)
	}
}

func TestOrbScenario(t *testing.T) {
	g := start(t, Options{})
	session := systems.GetOrCreateSession(g.ecs)
	entry := g.player(t)
	player := components.Player.Get(entry)
	scoreBefore, xpBefore := session.Score, player.XP

	for i := 0; i < 3; i++ {
		orb, ok := tags.Orb.First(g.ecs.World)
		if !ok {
			t.Fatalf("Expected an orb")
		}
		components.Body.Get(orb).Pos = components.Body.Get(entry).Pos
		factory.SyncObject(orb)

		g.Step(dt, Frame{})

		orbs := 0
		tags.Orb.Each(g.ecs.World, func(*donburi.Entry) { orbs++ })
		if orbs != 1 {
			t.Fatalf("Expected exactly 1 orb, got %d", orbs)
		}
	}

	if session.Score != scoreBefore+3*cfg.Orb.Score {
		t.Errorf("Expected score %d, got %d", scoreBefore+3*cfg.Orb.Score, session.Score)
	}
	if player.XP != xpBefore+3*cfg.Orb.XP {
		t.Errorf("Expected xp %d, got %d", xpBefore+3*cfg.Orb.XP, player.XP)
	}
}

func TestGameOverStopsSimulationOnTheSameFrame(t *testing.T) {
	store := &memStore{items: map[string][]byte{}}
	g := start(t, Options{Store: store})
	session := systems.GetOrCreateSession(g.ecs)
	session.Lives = 1
	session.Score = 250

	playerPos := components.Body.Get(g.player(t)).Pos
	factory.CreateBullet(g.ecs, factory.BulletSpec{Origin: components.OriginEnemy, Pos: playerPos, Damage: 1})

	g.Step(dt, Frame{})

	if g.Mode() != components.ModeGameOver {
		t.Fatalf("Expected GameOver on the hit frame, got %v", g.Mode())
	}
	elapsed := session.Elapsed

	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(dt, Frame{Intent: gamemath.V(1, 0)})
	}
	after := g.Snapshot()

	if session.Elapsed != elapsed {
		t.Errorf("Expected run clock frozen, %v -> %v", elapsed, session.Elapsed)
	}
	if len(before.Enemies) != len(after.Enemies) {
		t.Fatalf("Expected enemy population frozen, %d -> %d", len(before.Enemies), len(after.Enemies))
	}
	for i := range before.Enemies {
		if before.Enemies[i].Pos != after.Enemies[i].Pos {
			t.Errorf("Expected enemy %d frozen, %v -> %v", i, before.Enemies[i].Pos, after.Enemies[i].Pos)
		}
	}
	if len(before.Bullets) != len(after.Bullets) {
		t.Errorf("Expected bullets frozen, %d -> %d", len(before.Bullets), len(after.Bullets))
	}

	if session.HighScore != 250 {
		t.Errorf("Expected high score 250, got %d", session.HighScore)
	}
	reopened := New(Options{Store: store, Seed: 2})
	if got := reopened.Record().HighScore; got != 250 {
		t.Errorf("Expected persisted high score 250, got %d", got)
	}

	g.Step(dt, Frame{Commands: []components.Command{{Kind: components.CmdRestart}}})
	if g.Mode() != components.ModePlaying {
		t.Errorf("Expected restart to resume play, got %v", g.Mode())
	}
	if session.Lives != cfg.Player.StartingLives || session.Coins != 0 || session.Kills != 0 {
		t.Errorf("Expected a fresh run, lives=%d coins=%d kills=%d", session.Lives, session.Coins, session.Kills)
	}
}

func TestShopFreezesEnemiesButNotPlayer(t *testing.T) {
	g := start(t, Options{})
	g.Step(dt, Frame{Commands: []components.Command{{Kind: components.CmdToggleShop}}})

	before := g.Snapshot()
	if before.Shop == nil {
		t.Fatalf("Expected shop panel while open")
	}
	for i := 0; i < 30; i++ {
		g.Step(dt, Frame{Intent: gamemath.V(1, 0)})
	}
	after := g.Snapshot()

	if after.Player.Pos.X <= before.Player.Pos.X {
		t.Errorf("Expected the player to keep moving, %v -> %v", before.Player.Pos, after.Player.Pos)
	}
	if len(before.Enemies) != len(after.Enemies) {
		t.Fatalf("Expected no spawns while the shop is open")
	}
	for i := range before.Enemies {
		if before.Enemies[i].Pos != after.Enemies[i].Pos {
			t.Errorf("Expected enemy %d frozen", i)
		}
	}
	if after.HUD.Elapsed != before.HUD.Elapsed {
		t.Errorf("Expected run clock frozen while shopping")
	}
}

func TestPauseReturnsToTitle(t *testing.T) {
	g := start(t, Options{})
	g.Step(dt, Frame{Commands: []components.Command{{Kind: components.CmdPause}}})
	if g.Mode() != components.ModeTitle {
		t.Errorf("Expected Title after pause, got %v", g.Mode())
	}
}

func TestQuit(t *testing.T) {
	g := New(Options{Seed: 3})
	g.Step(dt, Frame{Commands: []components.Command{{Kind: components.CmdQuit}}})
	if !g.Quit() {
		t.Errorf("Expected quit to be reported")
	}
}

func TestSoundsAreClearedEachStep(t *testing.T) {
	g := New(Options{Seed: 4})
	g.Step(dt, Frame{Commands: []components.Command{{Kind: components.CmdStart}}})
	if len(g.Snapshot().Sounds) == 0 {
		t.Fatalf("Expected the start sound queued")
	}
	g.Step(dt, Frame{Commands: []components.Command{{Kind: components.CmdPause}}})
	for _, s := range g.Snapshot().Sounds {
		if s == cfg.SoundMenuSelect {
			t.Errorf("Expected last frame's sounds to be cleared")
		}
	}
}

func TestPlayerStaysInBoundsUnderPlay(t *testing.T) {
	g := start(t, Options{})
	intents := []gamemath.Vec2{gamemath.V(-1, -1), gamemath.V(1, 1)}
	for _, intent := range intents {
		for i := 0; i < 400; i++ {
			g.Step(dt, Frame{Intent: intent})
			if g.Mode() != components.ModePlaying {
				return
			}
			p := g.Snapshot().Player
			if p.Pos.X < p.Radius || p.Pos.X > float64(cfg.C.Width)-p.Radius ||
				p.Pos.Y < p.Radius || p.Pos.Y > float64(cfg.C.Height)-p.Radius {
				t.Fatalf("Player out of bounds: %v", p.Pos)
			}
		}
	}
}

func TestStepClampsLargeDelta(t *testing.T) {
	g := start(t, Options{})
	g.Step(5, Frame{})
	if dtUsed := systems.GetOrCreateClock(g.ecs).DT; dtUsed != cfg.C.MaxStep {
		t.Errorf("Expected delta clamped to %v, got %v", cfg.C.MaxStep, dtUsed)
	}
}
