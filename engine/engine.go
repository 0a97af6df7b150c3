// Package engine owns one game session and steps it a frame at a time.
// Callers feed it resolved input and read back a snapshot.Frame; it does no
// rendering, input polling or audio playback itself.
package engine

import (
	"math/rand/v2"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/snapshot"
	"github.com/automoto/neon-dodge/systems"
	"github.com/automoto/neon-dodge/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a new engine
type Options struct {
	// Store persists the record. Nil keeps everything in memory.
	Store components.RecordStore
	// Arena overrides the default playfield when Width and Height are set
	Arena components.ArenaData
	// Seed fixes the random source. Zero seeds from the runtime.
	Seed uint64
}

// Frame is the resolved input for one step
type Frame struct {
	Intent   gamemath.Vec2
	Commands []components.Command
}

type Engine struct {
	ecs *ecs.ECS
}

func New(opts Options) *Engine {
	w := ecs.NewECS(donburi.NewWorld())

	arena := opts.Arena
	if arena.Width <= 0 || arena.Height <= 0 {
		arena = DefaultArena()
	}

	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	factory.CreateSpace(w, arena.Width, arena.Height)
	factory.CreateSession(w, arena, rng, components.SettingsData{
		Record: systems.LoadRecord(opts.Store),
		Store:  opts.Store,
	})

	// Commands first so a game over or pause lands before any simulation
	w.AddSystem(systems.UpdateSession)

	// Player motion continues while the shop is open
	w.AddSystem(systems.WithMode(components.ModePlaying, systems.UpdatePlayer))

	w.AddSystem(systems.WithSimulationChecks(systems.UpdateRunClock))
	w.AddSystem(systems.WithSimulationChecks(systems.UpdateAutoFire))
	w.AddSystem(systems.WithSimulationChecks(systems.UpdateEnemies))
	w.AddSystem(systems.WithSimulationChecks(systems.UpdateParticles))
	w.AddSystem(systems.WithSimulationChecks(systems.UpdateSpawner))
	w.AddSystem(systems.WithSimulationChecks(systems.UpdateCombat))
	w.AddSystem(systems.WithSimulationChecks(systems.UpdatePickups))
	w.AddSystem(systems.WithSimulationChecks(systems.UpdateBuffs))
	w.AddSystem(systems.WithSimulationChecks(systems.UpdateScreenShake))

	w.AddSystem(systems.WithMode(components.ModeGameOver, systems.UpdateGameOver))

	return &Engine{ecs: w}
}

// DefaultArena is the open playfield used when no arena file is loaded
func DefaultArena() components.ArenaData {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	return components.ArenaData{
		Name:        "default",
		Width:       w,
		Height:      h,
		PlayerSpawn: gamemath.V(w/2, h/2),
	}
}

// Step advances the session by dt seconds using in
func (g *Engine) Step(dt float64, in Frame) {
	clock := systems.GetOrCreateClock(g.ecs)
	clock.DT = gamemath.Clamp(dt, 0, cfg.C.MaxStep)

	input := systems.GetOrCreateInput(g.ecs)
	input.Intent = in.Intent
	input.Commands = in.Commands

	systems.GetOrCreateAudio(g.ecs).PendingSFX = nil

	g.ecs.Update()

	input.Commands = nil
}

// Snapshot returns the draw data for the state after the last step
func (g *Engine) Snapshot() snapshot.Frame {
	return systems.BuildSnapshot(g.ecs)
}

// Quit reports whether a quit command has been processed
func (g *Engine) Quit() bool {
	return systems.GetOrCreateSession(g.ecs).Quit
}

// Mode returns the current top-level mode
func (g *Engine) Mode() components.GameMode {
	return systems.GetOrCreateSession(g.ecs).Mode
}

// Record returns the persisted record as currently held in memory
func (g *Engine) Record() components.RecordData {
	return systems.GetOrCreateSettings(g.ecs).Record
}

// ECS exposes the world for renderers that draw straight from components
func (g *Engine) ECS() *ecs.ECS {
	return g.ecs
}
