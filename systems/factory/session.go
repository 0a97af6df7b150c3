package factory

import (
	"math/rand/v2"

	"github.com/automoto/neon-dodge/archetypes"
	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton entity that carries run state
func CreateSession(ecs *ecs.ECS, arena components.ArenaData, rng *rand.Rand, settings components.SettingsData) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Session.SetValue(session, components.SessionData{
		Mode:      components.ModeTitle,
		Lives:     cfg.Player.StartingLives,
		HighScore: settings.Record.HighScore,
	})
	components.Spawner.SetValue(session, components.SpawnerData{
		EnemySpeed: cfg.Enemy.BaseSpeed,
		MaxEnemies: cfg.Enemy.StartMax,
		BossTimer:  cfg.Boss.FirstDelay,
	})
	components.Shop.SetValue(session, NewShop())
	components.ScreenShake.SetValue(session, components.ScreenShakeData{})
	components.Clock.SetValue(session, components.ClockData{RNG: rng})
	components.Input.SetValue(session, components.InputData{})
	components.Audio.SetValue(session, components.AudioData{})
	components.Settings.SetValue(session, settings)
	components.Arena.SetValue(session, arena)

	return session
}

// NewShop returns the ledger at its starting prices
func NewShop() components.ShopData {
	var shop components.ShopData
	for i := range shop.Entries {
		kind := components.UpgradeKind(i)
		entry := components.UpgradeEntry{Kind: kind}
		if i < len(cfg.Shop.Upgrades) {
			entry.Name = cfg.Shop.Upgrades[i].Name
			entry.Cost = cfg.Shop.Upgrades[i].Cost
		}
		shop.Entries[i] = entry
	}
	return shop
}
