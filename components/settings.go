package components

import (
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/yohamta/donburi"
)

// RecordData is the persisted record
type RecordData struct {
	HighScore   int              `json:"high_score"`
	MusicVolume float64          `json:"music_volume"`
	SFXVolume   float64          `json:"sfx_volume"`
	Difficulty  cfg.DifficultyID `json:"difficulty"`
}

// RecordStore is the key/value storage the record is saved to.
// *gdata.Manager satisfies it.
type RecordStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SettingsData stores the loaded record and the settings screen cursor (singleton component)
type SettingsData struct {
	Record   RecordData
	Selected cfg.SettingsOption
	Store    RecordStore // nil disables persistence
}

var Settings = donburi.NewComponentType[SettingsData]()
