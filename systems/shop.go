package systems

import (
	"math"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/yohamta/donburi/ecs"
)

// Buy purchases the upgrade at index (0..5). An unknown index or a short
// wallet is a silent no-op apart from the denied sound.
//
// Upgrades already at their cap still charge and inflate. The effect is a no-op.
func Buy(e *ecs.ECS, index int) bool {
	shop := GetOrCreateShop(e)
	session := GetOrCreateSession(e)

	if index < 0 || index >= len(shop.Entries) {
		return false
	}
	entry := &shop.Entries[index]
	if session.Coins < entry.Cost {
		PlaySFX(e, cfg.SoundDenied)
		return false
	}

	playerEntry, ok := getPlayer(e)
	if !ok {
		return false
	}

	session.Coins -= entry.Cost
	ApplyUpgrade(entry.Kind, components.Player.Get(playerEntry))
	entry.Cost = InflateCost(entry.Cost)
	PlaySFX(e, cfg.SoundPurchase)
	return true
}

// ApplyUpgrade mutates the player stats for one purchase of kind
func ApplyUpgrade(kind components.UpgradeKind, player *components.PlayerData) {
	switch kind {
	case components.UpgradeDamage:
		player.Damage += cfg.Shop.DamageAmount
	case components.UpgradeFireRate:
		player.FireCooldown = math.Max(cfg.Player.MinCooldown, player.FireCooldown*cfg.Shop.RateFactor)
	case components.UpgradeMoveSpeed:
		player.BaseSpeed *= cfg.Shop.SpeedFactor
	case components.UpgradeSpread:
		if player.SpreadLevel < cfg.Player.MaxSpread {
			player.SpreadLevel++
		}
	case components.UpgradePierce:
		if player.Pierce < cfg.Player.MaxPierce {
			player.Pierce++
		}
	case components.UpgradeShield:
		player.HasShield = true
		player.ShieldCharge = cfg.Player.ShieldMax
	case components.UpgradeCount:
	}
}

// InflateCost returns the price after one purchase: round(cost*inflation)+1, capped
func InflateCost(cost int) int {
	next := int(math.Round(float64(cost)*cfg.Shop.Inflation)) + 1
	return min(cfg.Shop.CostCeiling, max(cost, next))
}
