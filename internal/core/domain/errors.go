package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidMode indicates an unknown controller mode name.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrSessionCorrupt indicates a session file could not be decoded.
	// Playback degrades to an empty log unless strict playback is enabled.
	ErrSessionCorrupt = errors.New("session file corrupt")

	// ErrControllerClosed indicates the controller has been closed.
	// A closed controller accepts no further ticks.
	ErrControllerClosed = errors.New("controller closed")
)
