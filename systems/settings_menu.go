package systems

import (
	"fmt"
	"math"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// NavigateSettings moves the settings cursor with wrap-around
func NavigateSettings(e *ecs.ECS, delta int) {
	settings := GetOrCreateSettings(e)
	n := int(cfg.SettingsOptionCount)
	settings.Selected = cfg.SettingsOption(((int(settings.Selected)+delta)%n + n) % n)
	PlaySFX(e, cfg.SoundMenuNavigate)
}

// AdjustSetting changes the selected setting by one step and saves the record
func AdjustSetting(e *ecs.ECS, delta int) {
	if delta == 0 {
		return
	}
	settings := GetOrCreateSettings(e)
	step := cfg.SettingsMenu.VolumeStep * float64(sign(delta))

	switch settings.Selected {
	case cfg.SettingsMusicVolume:
		settings.Record.MusicVolume = stepVolume(settings.Record.MusicVolume, step)
	case cfg.SettingsSFXVolume:
		settings.Record.SFXVolume = stepVolume(settings.Record.SFXVolume, step)
	case cfg.SettingsDifficulty:
		n := int(cfg.DifficultyCount)
		settings.Record.Difficulty = cfg.DifficultyID(((int(settings.Record.Difficulty)+sign(delta))%n + n) % n)
	case cfg.SettingsOptionCount:
		return
	}

	PlaySFX(e, cfg.SoundMenuNavigate)
	SaveRecord(settings.Store, settings.Record)
}

// CurrentDifficulty returns the tuning for the saved difficulty
func CurrentDifficulty(e *ecs.ECS) cfg.DifficultyLevelConfig {
	return cfg.Difficulty.Level(GetOrCreateSettings(e).Record.Difficulty)
}

// settingValueLabel formats a settings row value for display
func settingValueLabel(record components.RecordData, opt cfg.SettingsOption) string {
	switch opt {
	case cfg.SettingsMusicVolume:
		return percent(record.MusicVolume)
	case cfg.SettingsSFXVolume:
		return percent(record.SFXVolume)
	case cfg.SettingsDifficulty:
		return cfg.Difficulty.Level(record.Difficulty).Name
	case cfg.SettingsOptionCount:
	}
	return ""
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

// stepVolume adds step and rounds to hundredths so repeated steps land on exact values
func stepVolume(v, step float64) float64 {
	return gamemath.Clamp(math.Round((v+step)*100)/100, 0, 1)
}

func percent(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}
