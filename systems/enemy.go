package systems

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/systems/factory"
	"github.com/automoto/neon-dodge/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies steers every enemy toward the player, then runs its kind behaviour
func UpdateEnemies(e *ecs.ECS) {
	playerEntry, ok := getPlayer(e)
	if !ok {
		return
	}
	playerPos := components.Body.Get(playerEntry).Pos

	clock := GetOrCreateClock(e)
	arena := GetOrCreateArena(e)

	for _, en := range sortedBySeq(e, tags.Enemy) {
		enemy := components.Enemy.Get(en)
		body := components.Body.Get(en)

		steerEnemy(enemy, body, playerPos, clock.DT, clock.RNG, arena.Width, arena.Height)
		runEnemyBehavior(e, enemy, body, playerPos, clock.DT, clock.RNG, arena)
		factory.SyncObject(en)
	}
}

// steerEnemy applies the shared chase, wall bounce and dash rules
func steerEnemy(enemy *components.EnemyData, body *components.BodyData, playerPos gamemath.Vec2, dt float64, rng *rand.Rand, width, height float64) {
	toPlayer := playerPos.Sub(body.Pos)
	var desired gamemath.Vec2
	if toPlayer.LengthSq() > 1e-4 {
		desired = toPlayer.Normalize().Scale(enemy.Speed)
	}

	jitterFrac, smoothing := cfg.Enemy.JitterFrac, cfg.Enemy.Smoothing
	if enemy.IsBoss() {
		jitterFrac, smoothing = cfg.Boss.JitterFrac, cfg.Boss.Smoothing
	}
	jitter := gamemath.V(gamemath.Uniform(rng, -1, 1), gamemath.Uniform(rng, -1, 1)).
		Scale(enemy.Speed * jitterFrac)

	body.Vel = body.Vel.Lerp(desired.Add(jitter), gamemath.SmoothFactor(smoothing, dt))
	body.Pos = body.Pos.Add(body.Vel.Scale(dt))
	body.Vel = gamemath.ReflectInRect(body.Pos, body.Vel, body.Radius, width, height)
	body.Pos = gamemath.ClampToRect(body.Pos, body.Radius, width, height)

	if enemy.Tier < 1 {
		return
	}
	enemy.DashCooldown -= dt
	if enemy.DashCooldown <= 0 {
		impulse := enemy.Speed * (cfg.Enemy.DashBase + cfg.Enemy.DashPerTier*float64(enemy.Tier))
		body.Vel = body.Vel.Add(toPlayer.Normalize().Scale(impulse))
		enemy.DashCooldown = gamemath.Uniform(rng, cfg.Enemy.DashMin, cfg.Enemy.DashMax)
	}
}

// runEnemyBehavior layers the kind-specific movement and attacks on top of steering
func runEnemyBehavior(e *ecs.ECS, enemy *components.EnemyData, body *components.BodyData, playerPos gamemath.Vec2, dt float64, rng *rand.Rand, arena *components.ArenaData) {
	aim := playerPos.Sub(body.Pos).NormalizeOr(gamemath.V(0, 1))

	switch enemy.Kind {
	case components.EnemyZigzag:
		enemy.Phase += cfg.Enemy.ZigzagFreq * dt
		perp := body.Vel.Perp()
		if !perp.IsZero() {
			offset := perp.Normalize().Scale(math.Sin(enemy.Phase) * enemy.Speed * cfg.Enemy.ZigzagAmp * dt)
			body.Pos = gamemath.ClampToRect(body.Pos.Add(offset), body.Radius, arena.Width, arena.Height)
		}

	case components.EnemyHoming:
		enemy.ShootCooldown -= dt
		if enemy.ShootCooldown <= 0 {
			fireEnemyBullet(e, body.Pos.Add(aim.Scale(body.Radius+cfg.Enemy.ShotOffset)),
				aim.Scale(cfg.Bullet.EnemySpeed*cfg.Bullet.HomingMult), cfg.Bullet.EnemyDamage, true)
			enemy.ShootCooldown = gamemath.Uniform(rng, cfg.Enemy.HomingShotMin, cfg.Enemy.HomingShotMax)
		}

	case components.EnemyMegaBoss:
		enemy.ShootCooldown -= dt
		if enemy.ShootCooldown <= 0 {
			ringSpeed := cfg.Bullet.EnemySpeed * cfg.Boss.RingSpeedMult
			for i := 0; i < cfg.Boss.RingCount; i++ {
				angle := float64(i) * 2 * math.Pi / float64(cfg.Boss.RingCount)
				dir := gamemath.V(math.Cos(angle), math.Sin(angle))
				fireEnemyBullet(e, body.Pos, dir.Scale(ringSpeed), cfg.Boss.ShotDamage, false)
			}
			fireEnemyBullet(e, body.Pos, aim.Scale(cfg.Bullet.EnemySpeed*cfg.Bullet.HomingMult), cfg.Boss.ShotDamage, true)
			enemy.ShootCooldown = gamemath.Uniform(rng, cfg.Boss.MegaShotMin, cfg.Boss.MegaShotMax)
		}

	case components.EnemyNormal, components.EnemyBoss:
		shooter := enemy.Tier >= 2 || (enemy.Kind == components.EnemyBoss && enemy.Variant == components.BossShooter)
		if !shooter {
			return
		}
		enemy.ShootCooldown -= dt
		if enemy.ShootCooldown <= 0 {
			damage := cfg.Bullet.EnemyDamage
			lo, hi := cfg.Enemy.ShootMin, cfg.Enemy.ShootMax
			if enemy.IsBoss() {
				damage = cfg.Boss.ShotDamage
				lo, hi = cfg.Boss.ShooterShotMin, cfg.Boss.ShooterShotMax
			}
			fireEnemyBullet(e, body.Pos.Add(aim.Scale(body.Radius+cfg.Enemy.ShotOffset)),
				aim.Scale(cfg.Bullet.EnemySpeed), damage, false)
			enemy.ShootCooldown = gamemath.Uniform(rng, lo, hi)
		}
	}
}

func fireEnemyBullet(e *ecs.ECS, pos, vel gamemath.Vec2, damage int, homing bool) {
	factory.CreateBullet(e, factory.BulletSpec{
		Origin: components.OriginEnemy,
		Pos:    pos,
		Vel:    vel,
		Damage: damage,
		Homing: homing,
	})
	PlaySFX(e, cfg.SoundEnemyShoot)
}
