// Package input polls the keyboard and gamepads and resolves the held and
// just-pressed actions into one engine.Frame.
package input

import (
	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/engine"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionState is the pressed state of every action for one poll
type ActionState [cfg.ActionCount]bool

// Poller keeps the previous poll so presses fire once
type Poller struct {
	Current  ActionState
	Previous ActionState

	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
}

// Poll reads the devices and returns this frame's resolved input
func (p *Poller) Poll() engine.Frame {
	// Swap buffers: current becomes previous, then zero out current
	p.Previous = p.Current
	p.Current = ActionState{}

	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				p.Current[actionID] = true
			}
		}
		for _, gpID := range p.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					p.Current[actionID] = true
				}
			}
		}
	}

	stick := p.leftStick()
	p.Current.mergeStick(stick)

	frame := Resolve(p.Current, p.Previous, stick)
	if ebiten.IsWindowBeingClosed() {
		frame.Commands = append(frame.Commands, components.Command{Kind: components.CmdQuit})
	}
	return frame
}

// leftStick returns the strongest left stick deflection past the deadzone
func (p *Poller) leftStick() gamemath.Vec2 {
	var best gamemath.Vec2
	for _, gpID := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := gamemath.V(
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
		)
		if v.LengthSq() > best.LengthSq() {
			best = v
		}
	}
	return ApplyDeadzone(best, cfg.Input.AnalogDeadzone)
}

// mergeStick marks the menu directions held by the stick so it can drive
// the settings screen like the d-pad
func (s *ActionState) mergeStick(stick gamemath.Vec2) {
	if stick.X < 0 {
		s[cfg.ActionMenuLeft] = true
	}
	if stick.X > 0 {
		s[cfg.ActionMenuRight] = true
	}
	if stick.Y < 0 {
		s[cfg.ActionMenuUp] = true
	}
	if stick.Y > 0 {
		s[cfg.ActionMenuDown] = true
	}
}

// ApplyDeadzone zeroes each axis whose magnitude is within deadzone
func ApplyDeadzone(v gamemath.Vec2, deadzone float64) gamemath.Vec2 {
	if v.X > -deadzone && v.X < deadzone {
		v.X = 0
	}
	if v.Y > -deadzone && v.Y < deadzone {
		v.Y = 0
	}
	return v
}

// Resolve turns two consecutive polls into a frame. Held move actions and the
// stick build the intent; actions pressed this poll but not the last become
// commands, in a fixed order.
func Resolve(current, previous ActionState, stick gamemath.Vec2) engine.Frame {
	var intent gamemath.Vec2
	if current[cfg.ActionMoveLeft] {
		intent.X--
	}
	if current[cfg.ActionMoveRight] {
		intent.X++
	}
	if current[cfg.ActionMoveUp] {
		intent.Y--
	}
	if current[cfg.ActionMoveDown] {
		intent.Y++
	}
	if intent.IsZero() {
		intent = stick
	}

	justPressed := func(a cfg.ActionID) bool {
		return current[a] && !previous[a]
	}

	var cmds []components.Command
	for _, m := range commandMap {
		if justPressed(m.action) {
			cmds = append(cmds, m.cmd)
		}
	}
	for i, a := range cfg.BuyActions {
		if justPressed(a) {
			cmds = append(cmds, components.Command{Kind: components.CmdBuy, Index: i})
		}
	}

	return engine.Frame{Intent: intent, Commands: cmds}
}

var commandMap = []struct {
	action cfg.ActionID
	cmd    components.Command
}{
	{cfg.ActionStart, components.Command{Kind: components.CmdStart}},
	{cfg.ActionSettings, components.Command{Kind: components.CmdSettings}},
	{cfg.ActionPause, components.Command{Kind: components.CmdPause}},
	{cfg.ActionRestart, components.Command{Kind: components.CmdRestart}},
	{cfg.ActionShop, components.Command{Kind: components.CmdToggleShop}},
	{cfg.ActionMenuUp, components.Command{Kind: components.CmdNavigate, Delta: -1}},
	{cfg.ActionMenuDown, components.Command{Kind: components.CmdNavigate, Delta: 1}},
	{cfg.ActionMenuLeft, components.Command{Kind: components.CmdAdjust, Delta: -1}},
	{cfg.ActionMenuRight, components.Command{Kind: components.CmdAdjust, Delta: 1}},
	{cfg.ActionBack, components.Command{Kind: components.CmdBack}},
}
