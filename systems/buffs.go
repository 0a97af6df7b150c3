package systems

import (
	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBuffs counts down the timed power-ups and refreshes the speed multiplier
func UpdateBuffs(e *ecs.ECS) {
	playerEntry, ok := getPlayer(e)
	if !ok {
		return
	}
	dt := GetOrCreateClock(e).DT
	buffs := components.Buffs.Get(playerEntry)

	buffs.Rapid = gamemath.Decay(buffs.Rapid, dt)
	buffs.Spread = gamemath.Decay(buffs.Spread, dt)
	buffs.Speed = gamemath.Decay(buffs.Speed, dt)
	buffs.Pierce = gamemath.Decay(buffs.Pierce, dt)

	player := components.Player.Get(playerEntry)
	player.SpeedMult = 1
	if buffs.Speed > 0 {
		player.SpeedMult = cfg.PowerUp.SpeedMult
	}
}
