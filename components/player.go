package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	BaseSpeed    float64
	SpeedMult    float64
	IFrames      float64 // invulnerability seconds remaining
	FireTimer    float64
	FireCooldown float64
	SpreadLevel  int
	Pierce       int
	Damage       int
	ShieldCharge float64
	HasShield    bool
	Level        int
	XP           int
	XPPerLevel   int
}

var Player = donburi.NewComponentType[PlayerData]()

// XPToNext returns the xp needed to reach the next level
func (p *PlayerData) XPToNext() int {
	return p.XPPerLevel * p.Level
}

// GainXP adds xp and applies every level-up it pays for
func (p *PlayerData) GainXP(amount int) {
	p.XP += amount
	if p.XPPerLevel <= 0 {
		return
	}
	for p.XP >= p.XPToNext() {
		p.XP -= p.XPToNext()
		p.Level++
	}
}
