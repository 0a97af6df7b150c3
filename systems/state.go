package systems

import (
	"math/rand/v2"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/systems/factory"
	"github.com/automoto/neon-dodge/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WithMode runs system only while the session is in mode.
func WithMode(mode components.GameMode, system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateSession(e).Mode != mode {
			return
		}
		system(e)
	}
}

// WithSimulationChecks runs system only while a run is live and the shop is closed.
// The session is re-read on every call so a game over raised earlier in the
// frame stops every later system.
func WithSimulationChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !GetOrCreateSession(e).Simulating() {
			return
		}
		system(e)
	}
}

func sessionEntry(e *ecs.ECS) *donburi.Entry {
	if ent, ok := components.Session.First(e.World); ok {
		return ent
	}
	arena := components.ArenaData{
		Width:  float64(cfg.C.Width),
		Height: float64(cfg.C.Height),
	}
	arena.PlayerSpawn.X = arena.Width / 2
	arena.PlayerSpawn.Y = arena.Height / 2
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return factory.CreateSession(e, arena, rng, components.SettingsData{Record: DefaultRecord()})
}

// GetOrCreateSession returns the run state singleton
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	return components.Session.Get(sessionEntry(e))
}

func GetOrCreateSpawner(e *ecs.ECS) *components.SpawnerData {
	return components.Spawner.Get(sessionEntry(e))
}

func GetOrCreateShop(e *ecs.ECS) *components.ShopData {
	return components.Shop.Get(sessionEntry(e))
}

func GetOrCreateScreenShake(e *ecs.ECS) *components.ScreenShakeData {
	return components.ScreenShake.Get(sessionEntry(e))
}

func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	return components.Clock.Get(sessionEntry(e))
}

func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	return components.Input.Get(sessionEntry(e))
}

func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	return components.Audio.Get(sessionEntry(e))
}

func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	return components.Settings.Get(sessionEntry(e))
}

func GetOrCreateArena(e *ecs.ECS) *components.ArenaData {
	return components.Arena.Get(sessionEntry(e))
}

// PlaySFX queues a sound event for the external audio layer
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// getPlayer returns the live player entry, if a run has one
func getPlayer(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}

// bossAlive reports whether a boss-flagged enemy is alive
func bossAlive(e *ecs.ECS) bool {
	alive := false
	tags.Enemy.Each(e.World, func(en *donburi.Entry) {
		if components.Enemy.Get(en).IsBoss() {
			alive = true
		}
	})
	return alive
}

func countEntities(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
