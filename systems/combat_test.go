package systems

import (
	"testing"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/tags"
)

func TestPierceDestroysPiercePlusOneEnemies(t *testing.T) {
	tests := []struct {
		name        string
		pierce      int
		enemies     int
		wantKilled  int
		wantBullets int
	}{
		{"No pierce", 0, 3, 1, 0},
		{"Pierce 1", 1, 3, 2, 0},
		{"Pierce 2", 2, 3, 3, 0},
		{"Pierce left over", 3, 3, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newRun()
			for i := 0; i < tt.enemies; i++ {
				placeEnemy(e, components.EnemyNormal, gamemath.V(200+float64(i)*5, 200), 1)
			}
			placeBullet(e, components.OriginPlayer, gamemath.V(205, 200), tt.pierce, 1)

			UpdateCombat(e)

			if got := GetOrCreateSession(e).Kills; got != tt.wantKilled {
				t.Errorf("Expected %d kills, got %d", tt.wantKilled, got)
			}
			if got := count(e, tags.Enemy); got != tt.enemies-tt.wantKilled {
				t.Errorf("Expected %d enemies left, got %d", tt.enemies-tt.wantKilled, got)
			}
			if got := count(e, tags.Bullet); got != tt.wantBullets {
				t.Errorf("Expected %d bullets left, got %d", tt.wantBullets, got)
			}
		})
	}
}

func TestFirstHitFollowsSpawnOrder(t *testing.T) {
	e := newRun()
	first := placeEnemy(e, components.EnemyNormal, gamemath.V(220, 200), 1)
	second := placeEnemy(e, components.EnemyNormal, gamemath.V(200, 200), 1)
	// Closer to the second enemy, but the first was spawned earlier
	placeBullet(e, components.OriginPlayer, gamemath.V(203, 200), 0, 1)

	UpdateCombat(e)

	if first.Valid() {
		t.Errorf("Expected the earlier enemy to be destroyed")
	}
	if !second.Valid() {
		t.Errorf("Expected the later enemy to survive")
	}
}

func TestKillRewardsNormalEnemy(t *testing.T) {
	e := newRun()
	session := GetOrCreateSession(e)
	player, _ := playerOf(e)
	scoreBefore, xpBefore := session.Score, player.XP

	placeEnemy(e, components.EnemyNormal, gamemath.V(200, 200), 1)
	placeBullet(e, components.OriginPlayer, gamemath.V(200, 200), 0, 1)

	UpdateCombat(e)

	if count(e, tags.Enemy) != 0 {
		t.Errorf("Expected enemy to be removed")
	}
	if session.Kills != 1 {
		t.Errorf("Expected 1 kill, got %d", session.Kills)
	}
	if session.Score != scoreBefore+cfg.Rewards.KillScore {
		t.Errorf("Expected score %d, got %d", scoreBefore+cfg.Rewards.KillScore, session.Score)
	}
	if session.Coins < cfg.Rewards.KillCoinsMin || session.Coins > cfg.Rewards.KillCoinsMax {
		t.Errorf("Expected coins in [%d,%d], got %d", cfg.Rewards.KillCoinsMin, cfg.Rewards.KillCoinsMax, session.Coins)
	}
	if player.XP != xpBefore+cfg.Rewards.KillXP {
		t.Errorf("Expected xp %d, got %d", xpBefore+cfg.Rewards.KillXP, player.XP)
	}
	if count(e, tags.Particle) != cfg.Particles.BurstCount {
		t.Errorf("Expected %d particles, got %d", cfg.Particles.BurstCount, count(e, tags.Particle))
	}
}

func TestWoundedEnemySurvivesWithHP(t *testing.T) {
	e := newRun()
	enemy := placeEnemy(e, components.EnemyNormal, gamemath.V(200, 200), 3)
	placeBullet(e, components.OriginPlayer, gamemath.V(200, 200), 0, 1)

	UpdateCombat(e)

	if !enemy.Valid() {
		t.Fatalf("Expected enemy to survive")
	}
	if hp := components.Enemy.Get(enemy).HP; hp != 2 {
		t.Errorf("Expected hp 2, got %d", hp)
	}
	if count(e, tags.Bullet) != 0 {
		t.Errorf("Expected bullet to be consumed")
	}
	if GetOrCreateSession(e).Kills != 0 {
		t.Errorf("Expected no kills")
	}
}

func TestMissedBulletSurvives(t *testing.T) {
	e := newRun()
	placeEnemy(e, components.EnemyNormal, gamemath.V(100, 100), 1)
	placeBullet(e, components.OriginPlayer, gamemath.V(300, 100), 0, 1)

	UpdateCombat(e)

	if count(e, tags.Bullet) != 1 {
		t.Errorf("Expected bullet to survive, got %d bullets", count(e, tags.Bullet))
	}
}

func TestBossKillRearmsBossTimer(t *testing.T) {
	e := newRun()
	session := GetOrCreateSession(e)
	session.Elapsed = 100
	GetOrCreateSpawner(e).BossTimer = cfg.Boss.Sentinel

	placeEnemy(e, components.EnemyBoss, gamemath.V(200, 200), 1)
	placeBullet(e, components.OriginPlayer, gamemath.V(200, 200), 0, 1)

	UpdateCombat(e)

	if session.Score != cfg.Rewards.BossScore {
		t.Errorf("Expected score %d, got %d", cfg.Rewards.BossScore, session.Score)
	}
	if session.Coins < cfg.Rewards.BossCoinsMin || session.Coins > cfg.Rewards.BossCoinsMax {
		t.Errorf("Expected boss coins, got %d", session.Coins)
	}
	want := 28.0 - 100*0.05
	if got := GetOrCreateSpawner(e).BossTimer; got != want {
		t.Errorf("Expected boss timer %v, got %v", want, got)
	}
}

func TestNextBossDelayFloors(t *testing.T) {
	if got := nextBossDelay(0); got != cfg.Boss.DelayStart {
		t.Errorf("Expected %v, got %v", cfg.Boss.DelayStart, got)
	}
	if got := nextBossDelay(10000); got != cfg.Boss.DelayFloor {
		t.Errorf("Expected floor %v, got %v", cfg.Boss.DelayFloor, got)
	}
}

func TestShieldAbsorbsEnemyBullet(t *testing.T) {
	e := newRun()
	player, body := playerOf(e)
	player.HasShield = true
	player.ShieldCharge = cfg.Player.ShieldMax
	lives := GetOrCreateSession(e).Lives

	placeBullet(e, components.OriginEnemy, body.Pos, 0, 1)
	UpdateCombat(e)

	if player.ShieldCharge != 0 {
		t.Errorf("Expected shield charge 0, got %v", player.ShieldCharge)
	}
	if got := GetOrCreateSession(e).Lives; got != lives {
		t.Errorf("Expected lives %d, got %d", lives, got)
	}
	if player.IFrames != cfg.Player.ShieldInvuln {
		t.Errorf("Expected iframes %v, got %v", cfg.Player.ShieldInvuln, player.IFrames)
	}
	if count(e, tags.Bullet) != 0 {
		t.Errorf("Expected bullet to be removed")
	}
}

func TestPartialShieldCostsLife(t *testing.T) {
	e := newRun()
	player, body := playerOf(e)
	player.HasShield = true
	player.ShieldCharge = cfg.Player.ShieldMax / 2
	lives := GetOrCreateSession(e).Lives

	placeBullet(e, components.OriginEnemy, body.Pos, 0, 1)
	UpdateCombat(e)

	if got := GetOrCreateSession(e).Lives; got != lives-1 {
		t.Errorf("Expected lives %d, got %d", lives-1, got)
	}
	if player.IFrames != cfg.Player.InvulnTime {
		t.Errorf("Expected iframes %v, got %v", cfg.Player.InvulnTime, player.IFrames)
	}
	if player.ShieldCharge != cfg.Player.ShieldMax/2 {
		t.Errorf("Expected shield charge untouched, got %v", player.ShieldCharge)
	}
}

func TestInvulnerablePlayerIgnoresBullets(t *testing.T) {
	e := newRun()
	player, body := playerOf(e)
	player.IFrames = 0.5
	lives := GetOrCreateSession(e).Lives

	placeBullet(e, components.OriginEnemy, body.Pos, 0, 1)
	UpdateCombat(e)

	if GetOrCreateSession(e).Lives != lives {
		t.Errorf("Expected no life lost during iframes")
	}
	if count(e, tags.Bullet) != 1 {
		t.Errorf("Expected bullet to pass through")
	}
}

func TestOnlyOneBulletHitPerFrame(t *testing.T) {
	e := newRun()
	_, body := playerOf(e)
	lives := GetOrCreateSession(e).Lives

	placeBullet(e, components.OriginEnemy, body.Pos, 0, 1)
	placeBullet(e, components.OriginEnemy, body.Pos.Add(gamemath.V(3, 0)), 0, 1)
	UpdateCombat(e)

	if got := GetOrCreateSession(e).Lives; got != lives-1 {
		t.Errorf("Expected exactly one life lost, got %d -> %d", lives, got)
	}
	if count(e, tags.Bullet) != 1 {
		t.Errorf("Expected the second bullet to survive, got %d", count(e, tags.Bullet))
	}
}

func TestContactHitsOncePerFrame(t *testing.T) {
	e := newRun()
	_, body := playerOf(e)
	lives := GetOrCreateSession(e).Lives

	placeEnemy(e, components.EnemyNormal, body.Pos, 1)
	placeEnemy(e, components.EnemyNormal, body.Pos.Add(gamemath.V(5, 0)), 1)
	UpdateCombat(e)

	if got := GetOrCreateSession(e).Lives; got != lives-1 {
		t.Errorf("Expected one life lost, got %d -> %d", lives, got)
	}
	if count(e, tags.Enemy) != 2 {
		t.Errorf("Expected contact not to destroy enemies")
	}
}

func TestLastLifeEndsRun(t *testing.T) {
	e := newRun()
	session := GetOrCreateSession(e)
	session.Lives = 1
	_, body := playerOf(e)

	placeBullet(e, components.OriginEnemy, body.Pos, 0, 1)
	enemy := placeEnemy(e, components.EnemyNormal, gamemath.V(200, 200), 1)
	placeBullet(e, components.OriginPlayer, gamemath.V(200, 200), 0, 1)

	UpdateCombat(e)

	if session.Mode != components.ModeGameOver {
		t.Fatalf("Expected GameOver, got %v", session.Mode)
	}
	if session.Lives != 0 {
		t.Errorf("Expected 0 lives, got %d", session.Lives)
	}
	if !enemy.Valid() || session.Kills != 0 {
		t.Errorf("Expected no player fire resolution after the run ended")
	}
}

func TestBulletsExpireAndLeaveBounds(t *testing.T) {
	e := newRun()
	stale := placeBullet(e, components.OriginPlayer, gamemath.V(100, 100), 0, 1)
	components.Bullet.Get(stale).Life = testDT / 2

	stray := placeBullet(e, components.OriginPlayer, gamemath.V(-cfg.Bullet.Margin-1, 100), 0, 1)
	live := placeBullet(e, components.OriginPlayer, gamemath.V(-cfg.Bullet.Margin+1, 100), 0, 1)

	UpdateCombat(e)

	if stale.Valid() {
		t.Errorf("Expected expired bullet to be removed")
	}
	if stray.Valid() {
		t.Errorf("Expected out of bounds bullet to be removed")
	}
	if !live.Valid() {
		t.Errorf("Expected bullet inside the margin to survive")
	}
}

func TestHomingBulletTurnsTowardPlayer(t *testing.T) {
	e := newRun()
	_, body := playerOf(e)
	b := placeBullet(e, components.OriginEnemy, body.Pos.Add(gamemath.V(-200, 0)), 0, 1)
	components.Bullet.Get(b).Homing = true
	components.Body.Get(b).Vel = gamemath.V(0, cfg.Bullet.EnemySpeed)

	UpdateCombat(e)

	if vx := components.Body.Get(b).Vel.X; vx <= 0 {
		t.Errorf("Expected velocity to turn toward the player, got vx=%v", vx)
	}
}
