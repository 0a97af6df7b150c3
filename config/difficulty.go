package config

// DifficultyID selects the enemy spawn pacing
type DifficultyID int

const (
	DifficultyEasy DifficultyID = iota
	DifficultyNormal
	DifficultyHard
	DifficultyCount
)

// DifficultyLevelConfig holds the tuning for one difficulty
type DifficultyLevelConfig struct {
	Name      string
	SpawnMult float64 // multiplies the enemy spawn cooldown
}

// DifficultyConfigData holds all difficulty levels in selection order
type DifficultyConfigData struct {
	Levels  [DifficultyCount]DifficultyLevelConfig
	Default DifficultyID
}

// Difficulty holds the difficulty table
var Difficulty DifficultyConfigData

// Level returns the tuning for id, falling back to the default for unknown ids
func (d DifficultyConfigData) Level(id DifficultyID) DifficultyLevelConfig {
	if id < 0 || id >= DifficultyCount {
		return d.Levels[d.Default]
	}
	return d.Levels[id]
}

func init() {
	Difficulty = DifficultyConfigData{
		Levels: [DifficultyCount]DifficultyLevelConfig{
			DifficultyEasy:   {Name: "Easy", SpawnMult: 1.5},
			DifficultyNormal: {Name: "Normal", SpawnMult: 1.0},
			DifficultyHard:   {Name: "Hard", SpawnMult: 0.7},
		},
		Default: DifficultyNormal,
	}
}
