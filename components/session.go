package components

import "github.com/yohamta/donburi"

// GameMode is the top-level screen the session is on
type GameMode int

const (
	ModeTitle GameMode = iota
	ModeSettings
	ModePlaying
	ModeGameOver
)

func (m GameMode) String() string {
	switch m {
	case ModeTitle:
		return "Title"
	case ModeSettings:
		return "Settings"
	case ModePlaying:
		return "Playing"
	case ModeGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// SessionData is the run state shared by every system (singleton component)
type SessionData struct {
	Mode      GameMode
	Elapsed   float64 // simulated seconds in the current run
	Score     int
	Coins     int
	Kills     int
	Lives     int
	HighScore int
	ShopOpen  bool
	Quit      bool
}

var Session = donburi.NewComponentType[SessionData]()

// Simulating reports whether enemies, bullets and timers advance this frame
func (s *SessionData) Simulating() bool {
	return s.Mode == ModePlaying && !s.ShopOpen
}
