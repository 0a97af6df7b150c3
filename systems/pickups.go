package systems

import (
	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/systems/factory"
	"github.com/automoto/neon-dodge/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups collects the orb and any power-ups the player is touching
func UpdatePickups(e *ecs.ECS) {
	playerEntry, ok := getPlayer(e)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	buffs := components.Buffs.Get(playerEntry)
	session := GetOrCreateSession(e)
	shake := GetOrCreateScreenShake(e)
	arena := GetOrCreateArena(e)
	rng := GetOrCreateClock(e).RNG

	for _, orb := range overlapping(playerEntry, tags.ResolvOrb) {
		session.Score += cfg.Orb.Score
		player.GainXP(cfg.Orb.XP)
		factory.Destroy(e, orb)
		factory.CreateOrb(e, factory.RandomInterior(rng, arena.Width, arena.Height, cfg.Orb.SpawnMargin))
		AddShake(shake, cfg.Shake.Orb, cfg.Shake.PickupCap)
		PlaySFX(e, cfg.SoundOrb)
	}

	for _, pu := range overlapping(playerEntry, tags.ResolvPowerUp) {
		ApplyPowerUp(player, buffs, components.PowerUp.Get(pu).Kind)
		factory.Destroy(e, pu)
		AddShake(shake, cfg.Shake.PowerUp, cfg.Shake.PickupCap)
		PlaySFX(e, cfg.SoundPowerUp)
	}
}

// ApplyPowerUp starts or restarts the buff a power-up grants.
// Collecting a running buff resets its timer instead of extending it.
func ApplyPowerUp(player *components.PlayerData, buffs *components.BuffsData, kind components.PowerUpKind) {
	switch kind {
	case components.PowerUpShield:
		player.HasShield = true
		player.ShieldCharge = cfg.Player.ShieldMax
	case components.PowerUpRapid, components.PowerUpSpread, components.PowerUpSpeed, components.PowerUpPierce:
		*buffs.Timer(kind) = cfg.PowerUp.Duration
	case components.PowerUpKindCount:
	}
}
