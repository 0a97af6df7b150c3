package components

import (
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/yohamta/donburi"
)

// ArenaData is the playfield the run takes place in (singleton component)
type ArenaData struct {
	Name        string
	Width       float64
	Height      float64
	PlayerSpawn gamemath.Vec2
}

var Arena = donburi.NewComponentType[ArenaData]()
