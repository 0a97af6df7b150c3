package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// OpenStore initializes the gdata manager used for the saved record
func OpenStore() (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return nil, err
	}
	return m, nil
}

// DefaultRecord is the record used when nothing valid is stored
func DefaultRecord() components.RecordData {
	return components.RecordData{
		HighScore:   0,
		MusicVolume: cfg.SettingsMenu.DefaultMusicVol,
		SFXVolume:   cfg.SettingsMenu.DefaultSFXVol,
		Difficulty:  cfg.Difficulty.Default,
	}
}

// LoadRecord reads the saved record. Missing or corrupt data yields defaults.
func LoadRecord(store components.RecordStore) components.RecordData {
	record := DefaultRecord()
	if store == nil {
		return record
	}

	data, err := store.LoadItem(cfg.Persistence.RecordKey)
	if err != nil {
		log.Printf("Warning: Could not load record: %v", err)
		return record
	}
	if len(data) == 0 {
		// Nothing saved yet
		return record
	}

	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse saved record: %v", err)
		return DefaultRecord()
	}

	return sanitizeRecord(record)
}

// SaveRecord writes the record. Failures are logged and otherwise ignored.
func SaveRecord(store components.RecordStore, record components.RecordData) {
	if store == nil {
		return
	}

	data, err := json.Marshal(record)
	if err != nil {
		log.Printf("Warning: Could not serialize record: %v", err)
		return
	}

	if err := store.SaveItem(cfg.Persistence.RecordKey, data); err != nil {
		log.Printf("Warning: Could not save record: %v", err)
	}
}

// SaveCurrentRecord saves the record held by the settings singleton
func SaveCurrentRecord(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	SaveRecord(settings.Store, settings.Record)
}

func sanitizeRecord(r components.RecordData) components.RecordData {
	if r.HighScore < 0 {
		r.HighScore = 0
	}
	r.MusicVolume = gamemath.Clamp(r.MusicVolume, 0, 1)
	r.SFXVolume = gamemath.Clamp(r.SFXVolume, 0, 1)
	if r.Difficulty < 0 || r.Difficulty >= cfg.DifficultyCount {
		r.Difficulty = cfg.Difficulty.Default
	}
	return r
}
