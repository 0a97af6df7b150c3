package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// ClockData carries the frame delta and the session random source (singleton component)
type ClockData struct {
	DT  float64
	RNG *rand.Rand
}

var Clock = donburi.NewComponentType[ClockData]()
