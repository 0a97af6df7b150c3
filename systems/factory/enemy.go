package factory

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/neon-dodge/archetypes"
	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnemySpec is everything needed to place one enemy
type EnemySpec struct {
	Kind          components.EnemyKind
	Variant       components.BossVariant
	Pos           gamemath.Vec2
	Vel           gamemath.Vec2
	Radius        float64
	Speed         float64
	HP            int
	Tier          int
	DashCooldown  float64
	ShootCooldown float64
	Phase         float64
}

func CreateEnemy(ecs *ecs.ECS, spec EnemySpec) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	radius := spec.Radius
	if radius <= 0 {
		radius = cfg.Enemy.Radius
	}
	hp := spec.HP
	if hp < 1 {
		hp = 1
	}

	components.Body.SetValue(enemy, components.BodyData{
		Pos:    spec.Pos,
		Vel:    spec.Vel,
		Radius: radius,
		Seq:    nextSeq(ecs),
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:          spec.Kind,
		Variant:       spec.Variant,
		Speed:         spec.Speed,
		HP:            hp,
		Tier:          spec.Tier,
		DashCooldown:  spec.DashCooldown,
		ShootCooldown: spec.ShootCooldown,
		Phase:         spec.Phase,
	})
	attachObject(ecs, enemy, tags.ResolvEnemy)

	return enemy
}

// RollEnemy draws a regular enemy entering from a random arena edge
func RollEnemy(rng *rand.Rand, width, height, enemySpeed float64, level int) EnemySpec {
	r := cfg.Enemy.Radius
	var pos gamemath.Vec2
	switch rng.IntN(4) {
	case 0: // top
		pos = gamemath.V(gamemath.Uniform(rng, 0, width), -r)
	case 1: // bottom
		pos = gamemath.V(gamemath.Uniform(rng, 0, width), height+r)
	case 2: // left
		pos = gamemath.V(-r, gamemath.Uniform(rng, 0, height))
	default: // right
		pos = gamemath.V(width+r, gamemath.Uniform(rng, 0, height))
	}

	tier := gamemath.IntRange(rng, 0, level)
	speed := enemySpeed * gamemath.Uniform(rng, cfg.Enemy.SpeedMinMult, cfg.Enemy.SpeedMaxMult) *
		(1 + cfg.Enemy.TierSpeedBump*float64(tier))

	spec := EnemySpec{
		Kind:   components.EnemyKind(rng.IntN(3)),
		Pos:    pos,
		Radius: r,
		HP:     1 + tier,
		Tier:   tier,
	}
	if tier >= 1 {
		spec.DashCooldown = gamemath.Uniform(rng, cfg.Enemy.DashMin, cfg.Enemy.DashMax)
	}

	switch spec.Kind {
	case components.EnemyZigzag:
		speed *= cfg.Enemy.ZigzagSpeed
		spec.Phase = gamemath.Uniform(rng, 0, 2*math.Pi)
	case components.EnemyHoming:
		speed *= cfg.Enemy.HomingSpeed
		spec.ShootCooldown = gamemath.Uniform(rng, cfg.Enemy.HomingFirstMin, cfg.Enemy.HomingFirstMax)
	case components.EnemyNormal:
		if tier >= 2 {
			spec.ShootCooldown = gamemath.Uniform(rng, cfg.Enemy.FirstShotMin, cfg.Enemy.FirstShotMax)
		}
	case components.EnemyBoss, components.EnemyMegaBoss:
	}

	center := gamemath.V(width/2, height/2)
	spec.Speed = speed
	spec.Vel = gamemath.SteerToward(pos, center, speed, gamemath.V(0, 1))
	return spec
}

// RollBoss draws a boss entering from the top edge. HP grows with run time.
func RollBoss(rng *rand.Rand, width, enemySpeed, elapsed float64) EnemySpec {
	variant := components.BossVariant(gamemath.Weighted(rng, cfg.Boss.VariantWeights[:]))
	pos := gamemath.V(
		gamemath.Uniform(rng, cfg.Boss.SpawnMargin, math.Max(cfg.Boss.SpawnMargin, width-cfg.Boss.SpawnMargin)),
		cfg.Boss.SpawnY,
	)
	steps := int(math.Floor(elapsed / cfg.Boss.HPInterval))

	spec := EnemySpec{Variant: variant, Pos: pos}
	switch variant {
	case components.BossMega:
		spec.Kind = components.EnemyMegaBoss
		spec.Speed = math.Max(cfg.Boss.MegaMinSpeed, enemySpeed*cfg.Boss.MegaSpeedMult)
		spec.HP = cfg.Boss.MegaBaseHP + steps*cfg.Boss.MegaHPStep
		spec.Tier = 3
		spec.ShootCooldown = gamemath.Uniform(rng, cfg.Boss.MegaShotMin, cfg.Boss.MegaShotMax)
		spec.Radius = cfg.Boss.MegaRadius
	case components.BossChaser, components.BossShooter:
		spec.Kind = components.EnemyBoss
		spec.Speed = math.Max(cfg.Boss.MinSpeed, enemySpeed*cfg.Boss.SpeedMult)
		spec.HP = cfg.Boss.BaseHP + steps*cfg.Boss.HPStep
		spec.Tier = 1
		spec.DashCooldown = gamemath.Uniform(rng, cfg.Enemy.DashMin, cfg.Enemy.DashMax)
		if variant == components.BossShooter {
			spec.Tier = 2
			spec.ShootCooldown = gamemath.Uniform(rng, cfg.Boss.ShooterShotMin, cfg.Boss.ShooterShotMax)
		}
		spec.Radius = cfg.Boss.Radius
	case components.BossVariantCount:
	}
	spec.Vel = gamemath.V(0, spec.Speed)
	return spec
}
