package domain

import (
	"fmt"
	"strings"
)

// Mode selects how the controller sources and sinks control vectors.
// A controller's mode is fixed at construction; there is no runtime
// transition between modes.
type Mode string

const (
	// ModeLive derives controls from live keyboard state.
	ModeLive Mode = "live"

	// ModeRecord behaves like ModeLive and additionally appends every
	// computed vector to a session log flushed on Close.
	ModeRecord Mode = "record"

	// ModePlayback replays vectors from a previously recorded session.
	ModePlayback Mode = "playback"
)

// ParseMode parses a mode name. The legacy conf names "normal" and
// "log" from older session files are accepted as aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "live", "normal":
		return ModeLive, nil
	case "record", "log":
		return ModeRecord, nil
	case "playback":
		return ModePlayback, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// IsValid reports whether the mode is one of the known modes.
func (m Mode) IsValid() bool {
	switch m {
	case ModeLive, ModeRecord, ModePlayback:
		return true
	default:
		return false
	}
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// SessionConfig is the controller construction configuration: which
// mode to run in and, for record/playback, the session file endpoint.
type SessionConfig struct {
	// Mode is the operating mode for the controller's lifetime.
	Mode Mode

	// Endpoint is the session file path. Required for ModeRecord and
	// ModePlayback, unused for ModeLive.
	Endpoint string
}

// DefaultSessionConfig returns the configuration used when no conf is
// supplied: live driving with no session file.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{Mode: ModeLive}
}

// Validate checks that the configuration is complete for its mode.
func (c SessionConfig) Validate() error {
	if !c.Mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
	if c.Mode != ModeLive && c.Endpoint == "" {
		return fmt.Errorf("%w: %s mode requires an endpoint", ErrInvalidInput, c.Mode)
	}
	return nil
}
