package domain

// DeckSettings holds the tunable behaviour of the drive deck.
type DeckSettings struct {
	// TickMS is the drive loop interval in milliseconds.
	TickMS int

	// KeyHoldMS is how long a key press counts as held after its last
	// repeat. Terminals deliver no key-up events, so a key is released
	// once its auto-repeat has been quiet for this window.
	KeyHoldMS int

	// StrictPlayback makes a corrupt session file a hard error instead
	// of degrading to an empty log.
	StrictPlayback bool

	// SessionsDir is where recorded session files are written.
	SessionsDir string
}

// DefaultDeckSettings returns the default deck configuration.
// SessionsDir is left empty; the settings service fills in the
// config-dir-relative default.
func DefaultDeckSettings() DeckSettings {
	return DeckSettings{
		TickMS:         33,
		KeyHoldMS:      150,
		StrictPlayback: false,
	}
}

// Validate checks the settings for usable values.
func (s DeckSettings) Validate() error {
	if s.TickMS <= 0 {
		return ErrInvalidInput
	}
	if s.KeyHoldMS <= 0 {
		return ErrInvalidInput
	}
	return nil
}
