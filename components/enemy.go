package components

import (
	"github.com/yohamta/donburi"
)

// EnemyKind is the behaviour family of an enemy
type EnemyKind int

const (
	EnemyNormal EnemyKind = iota
	EnemyZigzag
	EnemyHoming
	EnemyBoss
	EnemyMegaBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyNormal:
		return "Normal"
	case EnemyZigzag:
		return "Zigzag"
	case EnemyHoming:
		return "Homing"
	case EnemyBoss:
		return "Boss"
	case EnemyMegaBoss:
		return "MegaBoss"
	}
	return "Unknown"
}

// IsBoss reports whether the kind counts toward the single-boss limit
func (k EnemyKind) IsBoss() bool {
	switch k {
	case EnemyBoss, EnemyMegaBoss:
		return true
	case EnemyNormal, EnemyZigzag, EnemyHoming:
		return false
	}
	return false
}

// BossVariant selects boss tuning when a boss spawns
type BossVariant int

const (
	BossChaser BossVariant = iota
	BossShooter
	BossMega
	BossVariantCount
)

type EnemyData struct {
	Kind          EnemyKind
	Variant       BossVariant // only meaningful for bosses
	Speed         float64
	HP            int
	Tier          int
	DashCooldown  float64 // zero disables dashing
	ShootCooldown float64 // zero disables shooting
	Phase         float64 // zigzag phase in radians
}

var Enemy = donburi.NewComponentType[EnemyData]()

// IsBoss reports whether this enemy is a boss
func (e *EnemyData) IsBoss() bool {
	return e.Kind.IsBoss()
}
