package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ParticleData is a cosmetic spark from an explosion
type ParticleData struct {
	Color     color.RGBA
	Life      float64
	TotalLife float64
}

var Particle = donburi.NewComponentType[ParticleData]()

// FadeRatio returns remaining life as 0..1
func (p *ParticleData) FadeRatio() float64 {
	if p.TotalLife <= 0 {
		return 0
	}
	r := p.Life / p.TotalLife
	if r < 0 {
		return 0
	}
	return r
}
