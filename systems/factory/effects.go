package factory

import (
	"math/rand/v2"

	"github.com/automoto/neon-dodge/archetypes"
	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// SpawnExplosion bursts cfg.Particles.BurstCount sparks out of pos
func SpawnExplosion(ecs *ecs.ECS, rng *rand.Rand, pos gamemath.Vec2) {
	p := cfg.Particles
	for i := 0; i < p.BurstCount; i++ {
		dir := gamemath.V(gamemath.Uniform(rng, -1, 1), gamemath.Uniform(rng, -1, 1)).
			NormalizeOr(gamemath.V(1, 0))
		life := gamemath.Uniform(rng, p.LifeMin, p.LifeMax)

		spark := archetypes.Particle.Spawn(ecs)
		components.Body.SetValue(spark, components.BodyData{
			Pos:    pos,
			Vel:    dir.Scale(gamemath.Uniform(rng, p.SpeedMin, p.SpeedMax)),
			Radius: gamemath.Uniform(rng, p.RadiusMin, p.RadiusMax),
		})
		components.Particle.SetValue(spark, components.ParticleData{
			Color:     p.Palette[rng.IntN(len(p.Palette))],
			Life:      life,
			TotalLife: life,
		})
	}
}
