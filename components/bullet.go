package components

import "github.com/yohamta/donburi"

// BulletOrigin tells who fired a bullet
type BulletOrigin int

const (
	OriginPlayer BulletOrigin = iota
	OriginEnemy
)

type BulletData struct {
	Origin BulletOrigin
	Life   float64
	Pierce int
	Damage int
	Homing bool
}

var Bullet = donburi.NewComponentType[BulletData]()
