package tui

import (
	"sync"
	"time"

	"github.com/drivedeck-labs/drivedeck-cli/internal/adapters/driving/tui/keymap"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
)

// KeyState tracks which driving keys are currently held.
//
// Terminals report key presses but not releases, so a key counts as
// held for a short window after its last press. Terminal auto-repeat
// keeps refreshing the window while the physical key stays down, which
// approximates true key-down state closely enough for steering.
type KeyState struct {
	mu      sync.Mutex
	hold    time.Duration
	pressed map[keymap.Action]time.Time
}

// NewKeyState creates a key state tracker with the given hold window.
func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{
		hold:    hold,
		pressed: make(map[keymap.Action]time.Time),
	}
}

// Press records a press of the given action at time now.
func (s *KeyState) Press(action keymap.Action, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pressed[action] = now
}

// Snapshot returns the set of keys considered held at time now.
// Expired entries are dropped as a side effect.
func (s *KeyState) Snapshot(now time.Time) domain.KeySet {
	s.mu.Lock()
	defer s.mu.Unlock()

	var keys domain.KeySet
	for action, at := range s.pressed {
		if now.Sub(at) > s.hold {
			delete(s.pressed, action)
			continue
		}
		switch action {
		case keymap.ActionAccelerate:
			keys.Accelerate = true
		case keymap.ActionBrake:
			keys.Brake = true
		case keymap.ActionSteerLeft:
			keys.SteerLeft = true
		case keymap.ActionSteerRight:
			keys.SteerRight = true
		case keymap.ActionHandBrake:
			keys.HandBrake = true
		case keymap.ActionGearToggle:
			keys.GearToggle = true
		}
	}
	return keys
}
