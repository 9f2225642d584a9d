package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "up" {
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	if s == "down" {
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	if s == "left" {
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	if s == "right" {
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDriveAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key  string
		want Action
	}{
		{"up", ActionAccelerate},
		{"w", ActionAccelerate},
		{"down", ActionBrake},
		{"s", ActionBrake},
		{"left", ActionSteerLeft},
		{"a", ActionSteerLeft},
		{"right", ActionSteerRight},
		{"d", ActionSteerRight},
		{" ", ActionHandBrake},
		{"q", ActionGearToggle},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, ok := km.DriveAction(keyMsg(tt.key))
			assert.True(t, ok)
			assert.Equal(t, tt.want, action)
		})
	}
}

func TestDriveAction_NonDrivingKey(t *testing.T) {
	km := DefaultKeyMap()

	_, ok := km.DriveAction(keyMsg("x"))
	assert.False(t, ok)
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()
	assert.Len(t, km.ShortHelp(), 7)
}
