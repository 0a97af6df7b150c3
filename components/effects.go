package components

import (
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks the decaying camera shake (singleton component)
type ScreenShakeData struct {
	Magnitude float64 // max offset in pixels
	Tween     *gween.Tween
	Offset    gamemath.Vec2 // sampled offset for this frame
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
