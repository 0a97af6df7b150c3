package systems

import (
	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/systems/factory"
	"github.com/automoto/neon-dodge/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession drains this frame's commands and applies them to the state machine.
// Must run BEFORE every simulation system.
func UpdateSession(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	input := GetOrCreateInput(e)

	for _, cmd := range input.Commands {
		if session.Quit {
			return
		}
		handleCommand(e, session, cmd)
	}
}

func handleCommand(e *ecs.ECS, session *components.SessionData, cmd components.Command) {
	if cmd.Kind == components.CmdQuit {
		session.Quit = true
		return
	}

	switch session.Mode {
	case components.ModeTitle:
		switch cmd.Kind {
		case components.CmdStart:
			PlaySFX(e, cfg.SoundMenuSelect)
			StartRun(e)
		case components.CmdSettings:
			PlaySFX(e, cfg.SoundMenuSelect)
			session.Mode = components.ModeSettings
		case components.CmdBack:
			session.Quit = true
		}

	case components.ModeSettings:
		switch cmd.Kind {
		case components.CmdNavigate:
			NavigateSettings(e, cmd.Delta)
		case components.CmdAdjust:
			AdjustSetting(e, cmd.Delta)
		case components.CmdBack:
			session.Mode = components.ModeTitle
			SaveCurrentRecord(e)
		}

	case components.ModePlaying:
		switch cmd.Kind {
		case components.CmdPause:
			session.Mode = components.ModeTitle
		case components.CmdToggleShop:
			session.ShopOpen = !session.ShopOpen
		case components.CmdBuy:
			if session.ShopOpen {
				Buy(e, cmd.Index)
			}
		case components.CmdRestart:
			StartRun(e)
		case components.CmdBack:
			session.Quit = true
		}

	case components.ModeGameOver:
		switch cmd.Kind {
		case components.CmdRestart:
			PlaySFX(e, cfg.SoundMenuSelect)
			StartRun(e)
		case components.CmdBack:
			session.Quit = true
		}
	}
}

// StartRun resets every per-run value and enters Playing
func StartRun(e *ecs.ECS) {
	ResetRun(e)
	GetOrCreateSession(e).Mode = components.ModePlaying
}

// ResetRun clears the arena and restores run-initial values. The high score,
// settings and inflated shop prices survive.
func ResetRun(e *ecs.ECS) {
	var doomed []*donburi.Entry
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{
		tags.Player, tags.Enemy, tags.Bullet, tags.Orb, tags.PowerUp, tags.Particle,
	} {
		tag.Each(e.World, func(en *donburi.Entry) {
			doomed = append(doomed, en)
		})
	}
	for _, en := range doomed {
		factory.Destroy(e, en)
	}

	session := GetOrCreateSession(e)
	session.Elapsed = 0
	session.Score = 0
	session.Coins = 0
	session.Kills = 0
	session.Lives = cfg.Player.StartingLives
	session.ShopOpen = false

	rng := GetOrCreateClock(e).RNG
	spawner := GetOrCreateSpawner(e)
	*spawner = components.SpawnerData{
		EnemySpeed:   cfg.Enemy.BaseSpeed,
		MaxEnemies:   cfg.Enemy.StartMax,
		BossTimer:    cfg.Boss.FirstDelay,
		PowerUpTimer: gamemath.Uniform(rng, cfg.PowerUp.SpawnMin, cfg.PowerUp.SpawnMax),
	}

	*GetOrCreateScreenShake(e) = components.ScreenShakeData{}

	arena := GetOrCreateArena(e)
	factory.CreatePlayer(e, arena.PlayerSpawn)
	factory.CreateOrb(e, factory.RandomInterior(rng, arena.Width, arena.Height, cfg.Orb.SpawnMargin))
}

// UpdateRunClock advances the run time used by the enemy level and boss scaling
func UpdateRunClock(e *ecs.ECS) {
	GetOrCreateSession(e).Elapsed += GetOrCreateClock(e).DT
}
