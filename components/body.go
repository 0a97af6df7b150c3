package components

import (
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is the circle every simulated entity occupies
type BodyData struct {
	Pos    gamemath.Vec2
	Vel    gamemath.Vec2
	Radius float64
	Seq    uint64 // spawn order, used wherever population order matters
}

var Body = donburi.NewComponentType[BodyData]()
