package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/tags"
	"github.com/yohamta/donburi"
)

func TestEnemiesBounceInsideArena(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	enemy := components.EnemyData{Kind: components.EnemyNormal, Speed: 250, HP: 1}
	body := components.BodyData{Pos: gamemath.V(20, 20), Vel: gamemath.V(-400, -400), Radius: cfg.Enemy.Radius}
	target := gamemath.V(-500, -500)

	for i := 0; i < 600; i++ {
		steerEnemy(&enemy, &body, target, testDT, rng, testWidth, testHeight)
		r := body.Radius
		if body.Pos.X < r || body.Pos.X > testWidth-r || body.Pos.Y < r || body.Pos.Y > testHeight-r {
			t.Fatalf("Enemy left the arena at frame %d: %v", i, body.Pos)
		}
	}
}

func TestDashRearmsCooldown(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	enemy := components.EnemyData{Kind: components.EnemyNormal, Speed: 100, HP: 2, Tier: 1, DashCooldown: testDT / 2}
	body := components.BodyData{Pos: gamemath.V(100, 100), Radius: cfg.Enemy.Radius}

	steerEnemy(&enemy, &body, gamemath.V(500, 100), testDT, rng, testWidth, testHeight)

	if enemy.DashCooldown < cfg.Enemy.DashMin || enemy.DashCooldown > cfg.Enemy.DashMax {
		t.Errorf("Expected dash cooldown re-rolled, got %v", enemy.DashCooldown)
	}
	// Impulse is speed * (1.5 + 0.5*tier) toward the player
	if body.Vel.X < 150 {
		t.Errorf("Expected a dash impulse toward the player, got %v", body.Vel)
	}
}

func TestEnemyShooters(t *testing.T) {
	tests := []struct {
		name        string
		kind        components.EnemyKind
		variant     components.BossVariant
		tier        int
		wantBullets int
		wantHoming  int
	}{
		{"Plain normal", components.EnemyNormal, 0, 0, 0, 0},
		{"Tier 2 normal", components.EnemyNormal, 0, 2, 1, 0},
		{"Homing", components.EnemyHoming, 0, 0, 1, 1},
		{"Chaser boss", components.EnemyBoss, components.BossChaser, 1, 0, 0},
		{"Shooter boss", components.EnemyBoss, components.BossShooter, 2, 1, 0},
		{"Mega boss", components.EnemyMegaBoss, components.BossMega, 3, cfg.Boss.RingCount + 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newRun()
			en := placeEnemy(e, tt.kind, gamemath.V(150, 150), 5)
			enemy := components.Enemy.Get(en)
			enemy.Variant = tt.variant
			enemy.Tier = tt.tier
			enemy.ShootCooldown = 0
			enemy.DashCooldown = 10

			UpdateEnemies(e)

			if got := count(e, tags.Bullet); got != tt.wantBullets {
				t.Errorf("Expected %d bullets, got %d", tt.wantBullets, got)
			}
			homing := 0
			tags.Bullet.Each(e.World, func(b *donburi.Entry) {
				bullet := components.Bullet.Get(b)
				if bullet.Origin != components.OriginEnemy {
					t.Errorf("Expected enemy-owned bullets")
				}
				if bullet.Homing {
					homing++
				}
			})
			if homing != tt.wantHoming {
				t.Errorf("Expected %d homing bullets, got %d", tt.wantHoming, homing)
			}
		})
	}
}

func TestZigzagAdvancesPhase(t *testing.T) {
	e := newRun()
	en := placeEnemy(e, components.EnemyZigzag, gamemath.V(150, 150), 1)
	components.Body.Get(en).Vel = gamemath.V(100, 0)

	UpdateEnemies(e)

	if phase := components.Enemy.Get(en).Phase; phase != cfg.Enemy.ZigzagFreq*testDT {
		t.Errorf("Expected phase %v, got %v", cfg.Enemy.ZigzagFreq*testDT, phase)
	}
}
