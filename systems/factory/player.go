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

func CreatePlayer(ecs *ecs.ECS, pos gamemath.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Body.SetValue(player, components.BodyData{
		Pos:    pos,
		Radius: cfg.Player.Radius,
		Seq:    nextSeq(ecs),
	})
	components.Player.SetValue(player, components.PlayerData{
		BaseSpeed:    cfg.Player.BaseSpeed,
		SpeedMult:    1.0,
		FireCooldown: cfg.Player.FireCooldown,
		Damage:       cfg.Player.Damage,
		Level:        cfg.Player.StartLevel,
		XPPerLevel:   cfg.Player.XPPerLevel,
	})
	components.Buffs.SetValue(player, components.BuffsData{})
	attachObject(ecs, player, tags.ResolvPlayer)

	return player
}
