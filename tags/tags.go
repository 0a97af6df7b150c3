package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Bullet   = donburi.NewTag().SetName("Bullet")
	Orb      = donburi.NewTag().SetName("Orb")
	PowerUp  = donburi.NewTag().SetName("PowerUp")
	Particle = donburi.NewTag().SetName("Particle")
)

// Resolv tags for broad-phase collision
const (
	ResolvPlayer       = "Player"
	ResolvEnemy        = "Enemy"
	ResolvPlayerBullet = "PlayerBullet"
	ResolvEnemyBullet  = "EnemyBullet"
	ResolvOrb          = "Orb"
	ResolvPowerUp      = "PowerUp"
)
