package config

// SettingsOption is a row on the settings screen
type SettingsOption int

const (
	SettingsMusicVolume SettingsOption = iota
	SettingsSFXVolume
	SettingsDifficulty
	SettingsOptionCount
)

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	Labels          [SettingsOptionCount]string
	VolumeStep      float64
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

// Persistence holds the storage keys for saved data
var Persistence struct {
	AppName   string
	RecordKey string
}

func init() {
	SettingsMenu = SettingsMenuConfig{
		Labels: [SettingsOptionCount]string{
			SettingsMusicVolume: "Music Volume",
			SettingsSFXVolume:   "SFX Volume",
			SettingsDifficulty:  "Difficulty",
		},
		VolumeStep:      0.1,
		DefaultMusicVol: 1.0,
		DefaultSFXVol:   1.0,
	}

	Persistence.AppName = "neon_dodge"
	Persistence.RecordKey = "save"
}
