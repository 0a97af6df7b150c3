package components

import (
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/yohamta/donburi"
)

// CommandKind is a one-shot request from the input layer
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdStart
	CmdSettings
	CmdPause
	CmdRestart
	CmdToggleShop
	CmdBuy      // Index selects the upgrade (0..5)
	CmdNavigate // Delta moves the settings cursor
	CmdAdjust   // Delta changes the selected setting
	CmdBack
	CmdQuit
)

type Command struct {
	Kind  CommandKind
	Index int
	Delta int
}

// InputData is the resolved input for one frame (singleton component)
type InputData struct {
	Intent   gamemath.Vec2
	Commands []Command
}

var Input = donburi.NewComponentType[InputData]()
