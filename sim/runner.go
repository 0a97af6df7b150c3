// Package sim runs the engine without a window: a fixed tick loop driven by
// the autopilot, used for soak runs and balance checks.
package sim

import (
	"context"
	"log"
	"time"

	"github.com/automoto/neon-dodge/components"
	"github.com/automoto/neon-dodge/engine"
)

// Result summarizes a finished run
type Result struct {
	Ticks     int
	Elapsed   float64
	Score     int
	HighScore int
	Kills     int
	Level     int
	GameOver  bool
}

// Runner steps one engine at a fixed tick rate
type Runner struct {
	engine   *engine.Engine
	pilot    Autopilot
	tickRate int
	// Realtime paces ticks against the wall clock instead of running flat out
	Realtime bool
}

func NewRunner(eng *engine.Engine, tickRate int) *Runner {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Runner{engine: eng, tickRate: tickRate}
}

// Run ticks until the run ends, maxTicks pass, or ctx is cancelled
func (r *Runner) Run(ctx context.Context, maxTicks int) Result {
	var tickC <-chan time.Time
	if r.Realtime {
		ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
		defer ticker.Stop()
		tickC = ticker.C
		log.Printf("Sim loop started at %d ticks/second", r.tickRate)
	}

	var res Result
	for res.Ticks < maxTicks {
		if tickC != nil {
			select {
			case <-ctx.Done():
				return r.finish(res)
			case <-tickC:
			}
		} else if ctx.Err() != nil {
			return r.finish(res)
		}

		r.tick()
		res.Ticks++
		if r.engine.Mode() == components.ModeGameOver {
			res.GameOver = true
			break
		}
	}
	return r.finish(res)
}

func (r *Runner) tick() {
	intent, cmds := r.pilot.Next(r.engine.Snapshot())
	r.engine.Step(1/float64(r.tickRate), engine.Frame{Intent: intent, Commands: cmds})
}

func (r *Runner) finish(res Result) Result {
	hud := r.engine.Snapshot().HUD
	res.Elapsed = hud.Elapsed
	res.Score = hud.Score
	res.HighScore = hud.HighScore
	res.Kills = hud.Kills
	res.Level = hud.Level
	return res
}
