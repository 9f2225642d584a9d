// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"time"
)

// Tick drives the control loop. One Tick is emitted per frame.
type Tick struct {
	Time time.Time
}

// ErrorOccurred signals that a tick or flush failed.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
