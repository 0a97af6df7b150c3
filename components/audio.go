package components

import (
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/yohamta/donburi"
)

// AudioData collects the sound events raised during one frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
