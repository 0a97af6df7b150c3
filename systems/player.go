package systems

import (
	"math"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer steers the player toward the input intent and ticks its timers.
// Runs while the shop is open too.
func UpdatePlayer(e *ecs.ECS) {
	entry, ok := getPlayer(e)
	if !ok {
		return
	}

	dt := GetOrCreateClock(e).DT
	intent := GetOrCreateInput(e).Intent
	arena := GetOrCreateArena(e)

	player := components.Player.Get(entry)
	body := components.Body.Get(entry)

	stepPlayer(player, body, intent, dt, arena.Width, arena.Height)
	factory.SyncObject(entry)
}

func stepPlayer(player *components.PlayerData, body *components.BodyData, intent gamemath.Vec2, dt, width, height float64) {
	move := intent.Normalize().Scale(player.BaseSpeed * player.SpeedMult)
	body.Vel = body.Vel.Lerp(move, gamemath.SmoothFactor(cfg.Player.Friction, dt))
	body.Pos = body.Pos.Add(body.Vel.Scale(dt))
	body.Pos = gamemath.ClampToRect(body.Pos, body.Radius, width, height)

	player.IFrames = gamemath.Decay(player.IFrames, dt)
	player.FireTimer = gamemath.Decay(player.FireTimer, dt)

	if player.HasShield {
		player.ShieldCharge = math.Min(cfg.Player.ShieldMax, player.ShieldCharge+cfg.Player.ShieldRecharge*dt)
	}
}

// shieldReady reports whether the shield will absorb the next hit
func shieldReady(player *components.PlayerData) bool {
	return player.HasShield && player.ShieldCharge >= cfg.Player.ShieldMax
}
