package components

import "github.com/yohamta/donburi"

// UpgradeKind identifies a permanent shop upgrade. Order matches the buy keys 1-6.
type UpgradeKind int

const (
	UpgradeDamage UpgradeKind = iota
	UpgradeFireRate
	UpgradeMoveSpeed
	UpgradeSpread
	UpgradePierce
	UpgradeShield
	UpgradeCount
)

type UpgradeEntry struct {
	Kind UpgradeKind
	Name string
	Cost int
}

// ShopData is the upgrade ledger for the current run
type ShopData struct {
	Entries [UpgradeCount]UpgradeEntry
}

var Shop = donburi.NewComponentType[ShopData]()
