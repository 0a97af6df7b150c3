package systems

import (
	"math"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles integrates sparks and removes the expired ones
func UpdateParticles(e *ecs.ECS) {
	dt := GetOrCreateClock(e).DT
	var toRemove []*donburi.Entry

	tags.Particle.Each(e.World, func(en *donburi.Entry) {
		body := components.Body.Get(en)
		p := components.Particle.Get(en)

		body.Pos = body.Pos.Add(body.Vel.Scale(dt))
		p.Life -= dt
		if p.Life <= 0 {
			toRemove = append(toRemove, en)
		}
	})

	for _, en := range toRemove {
		e.World.Remove(en.Entity())
	}
}

// UpdateScreenShake advances the decay tween and samples this frame's offset
func UpdateScreenShake(e *ecs.ECS) {
	dt := GetOrCreateClock(e).DT
	shake := GetOrCreateScreenShake(e)

	if shake.Tween != nil {
		current, finished := shake.Tween.Update(float32(dt))
		shake.Magnitude = math.Max(0, float64(current))
		if finished {
			shake.Magnitude = 0
			shake.Tween = nil
		}
	}

	if shake.Magnitude <= 0 {
		shake.Offset = gamemath.Vec2{}
		return
	}
	rng := GetOrCreateClock(e).RNG
	shake.Offset = gamemath.V(
		gamemath.Uniform(rng, -shake.Magnitude, shake.Magnitude),
		gamemath.Uniform(rng, -shake.Magnitude, shake.Magnitude),
	)
}

// SetShake sets the shake magnitude and restarts its linear decay
func SetShake(shake *components.ScreenShakeData, magnitude float64) {
	shake.Magnitude = math.Max(0, magnitude)
	if shake.Magnitude == 0 {
		shake.Tween = nil
		return
	}
	shake.Tween = gween.New(float32(shake.Magnitude), 0, float32(shake.Magnitude/cfg.Shake.DecayRate), ease.Linear)
}

// AddShake raises the shake magnitude by amount without exceeding limit
func AddShake(shake *components.ScreenShakeData, amount, limit float64) {
	SetShake(shake, math.Min(limit, shake.Magnitude+amount))
}
