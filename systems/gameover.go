package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameOver records a beaten high score. Saving only happens on improvement.
func UpdateGameOver(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	if session.Score <= session.HighScore {
		return
	}

	session.HighScore = session.Score
	settings := GetOrCreateSettings(e)
	settings.Record.HighScore = session.HighScore
	SaveRecord(settings.Store, settings.Record)
}
