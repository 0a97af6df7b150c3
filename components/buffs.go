package components

import "github.com/yohamta/donburi"

// BuffsData tracks remaining seconds for each timed power-up
type BuffsData struct {
	Rapid  float64
	Spread float64
	Speed  float64
	Pierce float64
}

var Buffs = donburi.NewComponentType[BuffsData]()

// Timer returns the buff timer a power-up kind drives.
// Shield is not timed and returns nil.
func (b *BuffsData) Timer(kind PowerUpKind) *float64 {
	switch kind {
	case PowerUpRapid:
		return &b.Rapid
	case PowerUpSpread:
		return &b.Spread
	case PowerUpSpeed:
		return &b.Speed
	case PowerUpPierce:
		return &b.Pierce
	case PowerUpShield:
		return nil
	}
	return nil
}
