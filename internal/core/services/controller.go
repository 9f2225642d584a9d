package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driven"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driving"
	"github.com/drivedeck-labs/drivedeck-cli/internal/logger"
)

// Ensure SessionController implements the interface.
var _ driving.Controller = (*SessionController)(nil)

// ControllerOptions configures controller construction.
type ControllerOptions struct {
	// Store persists and loads session logs. Required for record and
	// playback modes.
	Store driven.SessionStore

	// StrictPlayback makes a corrupt session file fail construction
	// instead of degrading to an empty log.
	StrictPlayback bool
}

// SessionController converts raw key state into vehicle controls, one
// tick at a time. Its mode is fixed for its whole lifetime: live input,
// recording, or playback of a stored session.
//
// The controller is single-threaded by contract: the simulation loop
// calls Tick once per step and Close exactly once at teardown.
type SessionController struct {
	mode     domain.Mode
	endpoint string
	store    driven.SessionStore

	state *domain.ControlState

	// log accumulates snapshots in record mode.
	log *domain.SessionLog

	// playback holds the loaded log; cursor is the next record to
	// replay, monotonically non-decreasing, never past len(playback).
	playback []domain.ControlVector
	cursor   int

	last   domain.ControlVector
	ticks  int
	closed bool
}

// NewController builds a controller for the configured mode.
//
// Record mode starts with an empty log. Playback mode loads the log
// from cfg.Endpoint; a corrupt file degrades to an empty log with a
// warning unless opts.StrictPlayback is set.
func NewController(ctx context.Context, cfg domain.SessionConfig, opts ControllerOptions) (*SessionController, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Mode != domain.ModeLive && opts.Store == nil {
		return nil, fmt.Errorf("%w: %s mode requires a session store", domain.ErrInvalidInput, cfg.Mode)
	}

	c := &SessionController{
		mode:     cfg.Mode,
		endpoint: cfg.Endpoint,
		store:    opts.Store,
		state:    domain.NewControlState(),
	}

	switch cfg.Mode {
	case domain.ModeRecord:
		c.log = &domain.SessionLog{}

	case domain.ModePlayback:
		log, err := opts.Store.Load(ctx, cfg.Endpoint)
		if err != nil {
			if !errors.Is(err, domain.ErrSessionCorrupt) || opts.StrictPlayback {
				return nil, fmt.Errorf("loading session %s: %w", cfg.Endpoint, err)
			}
			logger.Warn("session %s is corrupt, playing back an empty log", cfg.Endpoint)
			log = &domain.SessionLog{}
		}
		c.playback = log.Records
		logger.Debug("loaded %d records from %s", len(c.playback), cfg.Endpoint)

	case domain.ModeLive:
		// Nothing extra to set up.
	}

	return c, nil
}

// Mode returns the fixed operating mode.
func (c *SessionController) Mode() domain.Mode {
	return c.mode
}

// Tick advances the controller by one simulation step.
func (c *SessionController) Tick(elapsedMS float64, keys domain.KeySet) (domain.TickResult, error) {
	if c.closed {
		return domain.TickResult{}, domain.ErrControllerClosed
	}
	c.ticks++

	var result domain.TickResult
	if c.mode == domain.ModePlayback {
		result = c.tickPlayback()
	} else {
		result.Control = c.state.Update(keys, elapsedMS)
	}
	c.last = result.Control

	if c.mode == domain.ModeRecord {
		c.log.Append(result.Control)
	}

	return result, nil
}

// tickPlayback replays the next stored vector, or holds the last one
// once the log is exhausted.
func (c *SessionController) tickPlayback() domain.TickResult {
	if c.cursor < len(c.playback) {
		v := c.playback[c.cursor]
		c.cursor++
		return domain.TickResult{Control: v}
	}
	return domain.TickResult{Control: c.last, Exhausted: true}
}

// Ticks returns how many ticks have been processed.
func (c *SessionController) Ticks() int {
	return c.ticks
}

// PlaybackLen returns the loaded log length in playback mode.
func (c *SessionController) PlaybackLen() int {
	return len(c.playback)
}

// Recorded returns a copy of the log accumulated so far in record
// mode, nil in other modes.
func (c *SessionController) Recorded() *domain.SessionLog {
	if c.log == nil {
		return nil
	}
	return c.log.Clone()
}

// Close tears the controller down. In record mode the session log is
// flushed to the endpoint; the flush happens at most once even if Close
// is called again, and a write failure is returned to the caller since
// silently losing a recording would be a correctness violation.
func (c *SessionController) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if c.mode != domain.ModeRecord {
		return nil
	}

	if err := c.store.Save(context.Background(), c.endpoint, c.log); err != nil {
		return fmt.Errorf("flushing session %s: %w", c.endpoint, err)
	}
	logger.Info("flushed %d records to %s", c.log.Len(), c.endpoint)
	return nil
}
