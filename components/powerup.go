package components

import "github.com/yohamta/donburi"

// PowerUpKind is the effect a power-up grants on pickup
type PowerUpKind int

const (
	PowerUpRapid PowerUpKind = iota
	PowerUpSpread
	PowerUpShield
	PowerUpSpeed
	PowerUpPierce
	PowerUpKindCount
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpRapid:
		return "Rapid"
	case PowerUpSpread:
		return "Spread"
	case PowerUpShield:
		return "Shield"
	case PowerUpSpeed:
		return "Speed"
	case PowerUpPierce:
		return "Pierce"
	case PowerUpKindCount:
	}
	return "Unknown"
}

type PowerUpData struct {
	Kind PowerUpKind
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
