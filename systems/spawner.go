package systems

import (
	"math"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/systems/factory"
	"github.com/automoto/neon-dodge/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner runs the enemy, boss and power-up countdowns and the difficulty ramp.
// The enemy and boss timers are independent; neither resets the other.
func UpdateSpawner(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	spawner := GetOrCreateSpawner(e)
	clock := GetOrCreateClock(e)
	arena := GetOrCreateArena(e)
	dt := clock.DT

	spawner.EnemyLevel = enemyLevel(session.Elapsed)

	spawner.SpawnTimer -= dt
	if !bossAlive(e) && spawner.SpawnTimer <= 0 && countEntities(e, tags.Enemy) < spawner.MaxEnemies {
		spec := factory.RollEnemy(clock.RNG, arena.Width, arena.Height, spawner.EnemySpeed, spawner.EnemyLevel)
		factory.CreateEnemy(e, spec)
		spawner.SpawnTimer = cfg.Spawner.Cooldown * CurrentDifficulty(e).SpawnMult *
			gamemath.Uniform(clock.RNG, cfg.Spawner.CooldownMinMul, cfg.Spawner.CooldownMaxMul)
	}

	spawner.BossTimer -= dt
	if spawner.BossTimer <= 0 && !bossAlive(e) {
		factory.CreateEnemy(e, factory.RollBoss(clock.RNG, arena.Width, spawner.EnemySpeed, session.Elapsed))
		// Pinned until the boss dies; the kill re-arms it
		spawner.BossTimer = cfg.Boss.Sentinel
		PlaySFX(e, cfg.SoundBossSpawn)
	}

	spawner.PowerUpTimer -= dt
	if spawner.PowerUpTimer <= 0 {
		pos := factory.RandomInterior(clock.RNG, arena.Width, arena.Height, cfg.PowerUp.SpawnMargin)
		factory.CreatePowerUp(e, factory.RollPowerUpKind(clock.RNG), pos)
		spawner.PowerUpTimer = gamemath.Uniform(clock.RNG, cfg.PowerUp.SpawnMin, cfg.PowerUp.SpawnMax)
	}

	spawner.RampTimer += dt
	if spawner.RampTimer >= cfg.Spawner.RampInterval {
		spawner.RampTimer = 0
		rampDifficulty(spawner)
	}
}

// enemyLevel is the highest tier regular spawns may roll at this point of the run
func enemyLevel(elapsed float64) int {
	level := int(math.Floor(elapsed / cfg.Enemy.LevelInterval))
	return gamemath.ClampInt(level, 0, cfg.Enemy.MaxTier)
}

// rampDifficulty applies one difficulty tick, never past the caps
func rampDifficulty(spawner *components.SpawnerData) {
	spawner.EnemySpeed = math.Min(spawner.EnemySpeed+cfg.Spawner.RampSpeedStep, cfg.Enemy.MaxSpeed)
	spawner.MaxEnemies = min(spawner.MaxEnemies+cfg.Spawner.RampCapStep, cfg.Enemy.MaxEnemies)
}
