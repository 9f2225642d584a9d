package driving

import (
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
)

// Controller is the per-tick control interface driven by the simulation
// loop. Exactly one Tick call happens per step; ticks are never
// concurrent.
type Controller interface {
	// Mode returns the fixed operating mode.
	Mode() domain.Mode

	// Tick advances the controller by one step. elapsedMS is the
	// wall-clock delta since the previous tick; keys is the live key
	// snapshot (ignored in playback). After Close, Tick returns
	// domain.ErrControllerClosed.
	Tick(elapsedMS float64, keys domain.KeySet) (domain.TickResult, error)

	// Ticks returns how many ticks have been processed.
	Ticks() int

	// PlaybackLen returns the loaded log length in playback mode, 0
	// otherwise.
	PlaybackLen() int

	// Close tears the controller down. In record mode it flushes the
	// session log exactly once; a flush failure is returned. Close is
	// idempotent and the controller is inert afterwards.
	Close() error
}
