// Package sound plays the sound events a frame reports, plus a looping bass
// line, at the volumes stored in the record.
package sound

import (
	"log"
	"sync"

	"github.com/automoto/neon-dodge/assets"
	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state - ebiten allows one context per process
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// Mixer owns the music player and the volume levels last applied
type Mixer struct {
	music       *audio.Player
	musicVolume float64
	sfxVolume   float64
}

// NewMixer synthesizes every effect up front and starts the music loop
func NewMixer(record components.RecordData) *Mixer {
	initGlobalAudio()

	for id := range cfg.Audio.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: could not synthesize %s: %v", id, err)
		}
	}

	m := &Mixer{}
	music, err := globalAudioLoader.LoadMusic()
	if err != nil {
		log.Printf("Warning: could not start music: %v", err)
	} else {
		m.music = music
		m.music.SetVolume(record.MusicVolume)
		m.music.Play()
	}
	m.musicVolume = record.MusicVolume
	m.sfxVolume = record.SFXVolume
	return m
}

// Apply updates the music and effect volumes from the record
func (m *Mixer) Apply(record components.RecordData) {
	m.sfxVolume = record.SFXVolume
	if m.music != nil && m.musicVolume != record.MusicVolume {
		m.music.SetVolume(record.MusicVolume)
	}
	m.musicVolume = record.MusicVolume
}

// Play starts one player per sound event. Repeats within a frame collapse to one.
func (m *Mixer) Play(sounds []cfg.SoundID) {
	if m.sfxVolume <= 0 {
		return
	}
	seen := make(map[cfg.SoundID]bool, len(sounds))
	for _, id := range sounds {
		if seen[id] {
			continue
		}
		seen[id] = true

		player, err := globalAudioLoader.LoadSFX(id)
		if err != nil {
			continue
		}
		player.SetVolume(m.sfxVolume)
		player.Play()
	}
}

// Close stops the music
func (m *Mixer) Close() {
	if m.music != nil {
		_ = m.music.Close()
		m.music = nil
	}
}
