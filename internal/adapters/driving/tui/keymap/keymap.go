// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action identifies a driving input derived from a key press.
type Action int

const (
	// ActionAccelerate applies throttle.
	ActionAccelerate Action = iota
	// ActionBrake applies the brake.
	ActionBrake
	// ActionSteerLeft steers toward negative deflection.
	ActionSteerLeft
	// ActionSteerRight steers toward positive deflection.
	ActionSteerRight
	// ActionHandBrake engages the hand brake.
	ActionHandBrake
	// ActionGearToggle toggles between forward and reverse gear.
	ActionGearToggle
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Accelerate applies throttle while held.
	Accelerate key.Binding

	// Brake applies the brake while held.
	Brake key.Binding

	// SteerLeft steers left while held.
	SteerLeft key.Binding

	// SteerRight steers right while held.
	SteerRight key.Binding

	// HandBrake engages the hand brake while held.
	HandBrake key.Binding

	// GearToggle flips between forward and reverse.
	GearToggle key.Binding

	// Quit exits the application.
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Accelerate: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "throttle"),
		),
		Brake: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "brake"),
		),
		SteerLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "steer left"),
		),
		SteerRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "steer right"),
		),
		HandBrake: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hand brake"),
		),
		GearToggle: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "gear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// DriveAction resolves a key message to a driving action.
// The second return value is false for keys that do not drive.
func (k *KeyMap) DriveAction(msg tea.KeyMsg) (Action, bool) {
	switch {
	case key.Matches(msg, k.Accelerate):
		return ActionAccelerate, true
	case key.Matches(msg, k.Brake):
		return ActionBrake, true
	case key.Matches(msg, k.SteerLeft):
		return ActionSteerLeft, true
	case key.Matches(msg, k.SteerRight):
		return ActionSteerRight, true
	case key.Matches(msg, k.HandBrake):
		return ActionHandBrake, true
	case key.Matches(msg, k.GearToggle):
		return ActionGearToggle, true
	}
	return 0, false
}

// ShortHelp returns the keybindings shown in the dashboard footer.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Accelerate, k.Brake, k.SteerLeft, k.SteerRight,
		k.HandBrake, k.GearToggle, k.Quit,
	}
}
