package factory

import (
	"github.com/automoto/neon-dodge/archetypes"
	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BulletSpec describes a projectile at the moment it is fired
type BulletSpec struct {
	Origin components.BulletOrigin
	Pos    gamemath.Vec2
	Vel    gamemath.Vec2
	Pierce int
	Damage int
	Homing bool
}

func CreateBullet(ecs *ecs.ECS, spec BulletSpec) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(ecs)

	components.Body.SetValue(bullet, components.BodyData{
		Pos:    spec.Pos,
		Vel:    spec.Vel,
		Radius: cfg.Bullet.Radius,
		Seq:    nextSeq(ecs),
	})
	components.Bullet.SetValue(bullet, components.BulletData{
		Origin: spec.Origin,
		Life:   cfg.Bullet.Lifetime,
		Pierce: spec.Pierce,
		Damage: spec.Damage,
		Homing: spec.Homing,
	})

	tag := tags.ResolvPlayerBullet
	if spec.Origin == components.OriginEnemy {
		tag = tags.ResolvEnemyBullet
	}
	attachObject(ecs, bullet, tag)

	return bullet
}
