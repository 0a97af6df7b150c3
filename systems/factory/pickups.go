package factory

import (
	"math/rand/v2"

	"github.com/automoto/neon-dodge/archetypes"
	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateOrb(ecs *ecs.ECS, pos gamemath.Vec2) *donburi.Entry {
	orb := archetypes.Orb.Spawn(ecs)
	components.Body.SetValue(orb, components.BodyData{
		Pos:    pos,
		Radius: cfg.Orb.Radius,
		Seq:    nextSeq(ecs),
	})
	attachObject(ecs, orb, tags.ResolvOrb)
	return orb
}

func CreatePowerUp(ecs *ecs.ECS, kind components.PowerUpKind, pos gamemath.Vec2) *donburi.Entry {
	pu := archetypes.PowerUp.Spawn(ecs)
	components.Body.SetValue(pu, components.BodyData{
		Pos:    pos,
		Radius: cfg.PowerUp.Radius,
		Seq:    nextSeq(ecs),
	})
	components.PowerUp.SetValue(pu, components.PowerUpData{Kind: kind})
	attachObject(ecs, pu, tags.ResolvPowerUp)
	return pu
}

// RandomInterior returns a uniform point at least margin away from every edge
func RandomInterior(rng *rand.Rand, width, height, margin float64) gamemath.Vec2 {
	return gamemath.V(
		gamemath.Uniform(rng, margin, max(margin, width-margin)),
		gamemath.Uniform(rng, margin, max(margin, height-margin)),
	)
}

// RollPowerUpKind picks a power-up kind uniformly
func RollPowerUpKind(rng *rand.Rand) components.PowerUpKind {
	return components.PowerUpKind(rng.IntN(int(components.PowerUpKindCount)))
}
