package systems

import (
	"math"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/systems/factory"
	"github.com/automoto/neon-dodge/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAutoFire shoots at the nearest enemy whenever the fire timer has elapsed
func UpdateAutoFire(e *ecs.ECS) {
	entry, ok := getPlayer(e)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	if player.FireTimer > 0 {
		return
	}

	body := components.Body.Get(entry)
	target, found := nearestEnemy(e, body.Pos)
	if !found {
		return
	}
	aim := target.Sub(body.Pos).NormalizeOr(gamemath.V(1, 0))
	buffs := components.Buffs.Get(entry)

	cooldown := player.FireCooldown
	if buffs.Rapid > 0 {
		cooldown *= cfg.PowerUp.RapidMult
	}
	player.FireTimer = math.Max(cfg.Player.MinCooldown, cooldown)

	pierce := player.Pierce
	if buffs.Pierce > 0 {
		pierce = cfg.PowerUp.PierceAmount
	}

	fireBullet(e, body, aim, pierce, player.Damage)
	for _, angle := range spreadAngles(player.SpreadLevel, buffs.Spread > 0) {
		fireBullet(e, body, aim.Rotate(angle), pierce, player.Damage)
	}

	AddShake(GetOrCreateScreenShake(e), cfg.Shake.Fire, cfg.Shake.FireCap)
	PlaySFX(e, cfg.SoundShoot)
}

func fireBullet(e *ecs.ECS, body *components.BodyData, dir gamemath.Vec2, pierce, damage int) {
	factory.CreateBullet(e, factory.BulletSpec{
		Origin: components.OriginPlayer,
		Pos:    body.Pos.Add(dir.Scale(body.Radius + cfg.Bullet.MuzzleOffset)),
		Vel:    dir.Scale(cfg.Bullet.Speed),
		Pierce: pierce,
		Damage: damage,
	})
}

// spreadAngles returns the extra bullet angles in degrees for a spread level.
// An active Spread buff raises level 0 to 1.
func spreadAngles(level int, buffed bool) []float64 {
	if buffed && level < 1 {
		level = 1
	}
	switch {
	case level <= 0:
		return nil
	case level == 1:
		return cfg.Bullet.SpreadLevel1
	default:
		return cfg.Bullet.SpreadLevel2
	}
}

// nearestEnemy returns the position of the enemy closest to pos by squared distance
func nearestEnemy(e *ecs.ECS, pos gamemath.Vec2) (gamemath.Vec2, bool) {
	var best gamemath.Vec2
	bestDist := math.Inf(1)
	found := false
	tags.Enemy.Each(e.World, func(en *donburi.Entry) {
		p := components.Body.Get(en).Pos
		if d := p.DistanceSq(pos); d < bestDist {
			bestDist = d
			best = p
			found = true
		}
	})
	return best, found
}
