package systems

import (
	"testing"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
)

func TestNavigateSettingsWraps(t *testing.T) {
	e := newTestECS(nil)
	settings := GetOrCreateSettings(e)

	NavigateSettings(e, -1)
	if settings.Selected != cfg.SettingsDifficulty {
		t.Errorf("Expected wrap to the last row, got %v", settings.Selected)
	}
	NavigateSettings(e, 1)
	if settings.Selected != cfg.SettingsMusicVolume {
		t.Errorf("Expected wrap to the first row, got %v", settings.Selected)
	}
}

func TestAdjustVolumeSavesAndClamps(t *testing.T) {
	store := newMemStore()
	e := newTestECS(store)
	settings := GetOrCreateSettings(e)
	settings.Selected = cfg.SettingsSFXVolume

	AdjustSetting(e, -1)
	if settings.Record.SFXVolume != 0.9 {
		t.Errorf("Expected sfx volume 0.9, got %v", settings.Record.SFXVolume)
	}
	if store.saves != 1 {
		t.Errorf("Expected a save per change, got %d", store.saves)
	}

	AdjustSetting(e, 1)
	AdjustSetting(e, 1)
	if settings.Record.SFXVolume != 1 {
		t.Errorf("Expected sfx volume clamped at 1, got %v", settings.Record.SFXVolume)
	}

	for i := 0; i < 15; i++ {
		AdjustSetting(e, -1)
	}
	if settings.Record.SFXVolume != 0 {
		t.Errorf("Expected sfx volume clamped at 0, got %v", settings.Record.SFXVolume)
	}
	if got := LoadRecord(store).SFXVolume; got != 0 {
		t.Errorf("Expected saved volume 0, got %v", got)
	}
}

func TestAdjustDifficultyCycles(t *testing.T) {
	e := newTestECS(nil)
	settings := GetOrCreateSettings(e)
	settings.Selected = cfg.SettingsDifficulty

	AdjustSetting(e, 1)
	if settings.Record.Difficulty != cfg.DifficultyHard {
		t.Errorf("Expected Hard, got %v", settings.Record.Difficulty)
	}
	AdjustSetting(e, 1)
	if settings.Record.Difficulty != cfg.DifficultyEasy {
		t.Errorf("Expected wrap to Easy, got %v", settings.Record.Difficulty)
	}
	AdjustSetting(e, -1)
	if settings.Record.Difficulty != cfg.DifficultyHard {
		t.Errorf("Expected wrap back to Hard, got %v", settings.Record.Difficulty)
	}
	if CurrentDifficulty(e).SpawnMult != cfg.Difficulty.Levels[cfg.DifficultyHard].SpawnMult {
		t.Errorf("Expected hard spawn pacing")
	}
}

func TestSettingsCommandsOnlyInSettingsMode(t *testing.T) {
	e := newTestECS(nil)
	GetOrCreateInput(e).Commands = []components.Command{{Kind: components.CmdAdjust, Delta: -1}}

	UpdateSession(e)

	if v := GetOrCreateSettings(e).Record.MusicVolume; v != cfg.SettingsMenu.DefaultMusicVol {
		t.Errorf("Expected volume untouched on the title screen, got %v", v)
	}
}

func TestSettingValueLabel(t *testing.T) {
	record := components.RecordData{MusicVolume: 0.3, SFXVolume: 1, Difficulty: cfg.DifficultyEasy}
	if got := settingValueLabel(record, cfg.SettingsMusicVolume); got != "30%" {
		t.Errorf("Expected 30%%, got %q", got)
	}
	if got := settingValueLabel(record, cfg.SettingsDifficulty); got != cfg.Difficulty.Levels[cfg.DifficultyEasy].Name {
		t.Errorf("Expected difficulty name, got %q", got)
	}
}
