package systems

import (
	"slices"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/snapshot"
	"github.com/automoto/neon-dodge/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildSnapshot copies the draw data out of the world. It never mutates state.
func BuildSnapshot(e *ecs.ECS) snapshot.Frame {
	session := GetOrCreateSession(e)
	arena := GetOrCreateArena(e)

	frame := snapshot.Frame{
		Mode:   session.Mode,
		Width:  arena.Width,
		Height: arena.Height,
		Shake:  GetOrCreateScreenShake(e).Offset,
		Sounds: slices.Clone(GetOrCreateAudio(e).PendingSFX),
	}

	for _, en := range sortedBySeq(e, tags.Enemy) {
		enemy := components.Enemy.Get(en)
		frame.Enemies = append(frame.Enemies, snapshot.Enemy{
			Circle:  circleOf(en),
			Kind:    enemy.Kind,
			Variant: enemy.Variant,
			Tier:    enemy.Tier,
			HP:      enemy.HP,
		})
	}
	for _, en := range sortedBySeq(e, tags.Bullet) {
		bullet := components.Bullet.Get(en)
		frame.Bullets = append(frame.Bullets, snapshot.Bullet{
			Circle: circleOf(en),
			Origin: bullet.Origin,
			Homing: bullet.Homing,
		})
	}
	for _, en := range sortedBySeq(e, tags.PowerUp) {
		frame.PowerUps = append(frame.PowerUps, snapshot.PowerUp{
			Circle: circleOf(en),
			Kind:   components.PowerUp.Get(en).Kind,
		})
	}
	if orb, ok := tags.Orb.First(e.World); ok {
		c := circleOf(orb)
		frame.Orb = &c
	}
	tags.Particle.Each(e.World, func(en *donburi.Entry) {
		p := components.Particle.Get(en)
		frame.Particles = append(frame.Particles, snapshot.Particle{
			Circle: circleOf(en),
			Color:  p.Color,
			Fade:   p.FadeRatio(),
		})
	})

	frame.HUD = snapshot.HUD{
		Score:      session.Score,
		HighScore:  session.HighScore,
		Coins:      session.Coins,
		Kills:      session.Kills,
		Lives:      session.Lives,
		LivesRatio: gamemath.Clamp(float64(session.Lives)/float64(cfg.Player.StartingLives), 0, 1),
		Elapsed:    session.Elapsed,
		EnemyLevel: GetOrCreateSpawner(e).EnemyLevel,
		Difficulty: CurrentDifficulty(e).Name,
	}

	if playerEntry, ok := getPlayer(e); ok {
		player := components.Player.Get(playerEntry)
		body := components.Body.Get(playerEntry)
		frame.Player = &snapshot.Player{
			Circle:       circleOf(playerEntry),
			Vel:          body.Vel,
			Invulnerable: player.IFrames > 0,
			HasShield:    player.HasShield,
			ShieldReady:  shieldReady(player),
		}
		frame.HUD.Level = player.Level
		frame.HUD.XP = player.XP
		frame.HUD.XPToNext = player.XPToNext()
		frame.HUD.ShieldRatio = gamemath.Clamp(player.ShieldCharge/cfg.Player.ShieldMax, 0, 1)
		frame.HUD.Buffs = activeBuffs(components.Buffs.Get(playerEntry))
	}

	if session.Mode == components.ModePlaying && session.ShopOpen {
		frame.Shop = buildShop(GetOrCreateShop(e), session.Coins)
	}
	if session.Mode == components.ModeSettings {
		frame.Settings = buildSettings(GetOrCreateSettings(e))
	}

	return frame
}

func circleOf(en *donburi.Entry) snapshot.Circle {
	body := components.Body.Get(en)
	return snapshot.Circle{Pos: body.Pos, Radius: body.Radius}
}

func activeBuffs(buffs *components.BuffsData) []snapshot.BuffTimer {
	var out []snapshot.BuffTimer
	for kind := components.PowerUpKind(0); kind < components.PowerUpKindCount; kind++ {
		timer := buffs.Timer(kind)
		if timer == nil || *timer <= 0 {
			continue
		}
		out = append(out, snapshot.BuffTimer{Kind: kind, Remaining: *timer})
	}
	return out
}

func buildShop(shop *components.ShopData, coins int) *snapshot.Shop {
	out := &snapshot.Shop{Wallet: coins}
	for i, entry := range shop.Entries {
		out.Rows = append(out.Rows, snapshot.ShopRow{
			Key:        i + 1,
			Name:       entry.Name,
			Cost:       entry.Cost,
			Affordable: coins >= entry.Cost,
		})
	}
	return out
}

func buildSettings(settings *components.SettingsData) snapshot.Settings {
	var out snapshot.Settings
	for opt := cfg.SettingsOption(0); opt < cfg.SettingsOptionCount; opt++ {
		out.Rows = append(out.Rows, snapshot.SettingRow{
			Label:    cfg.SettingsMenu.Labels[opt],
			Value:    settingValueLabel(settings.Record, opt),
			Selected: opt == settings.Selected,
		})
	}
	return out
}
