package driven

import (
	"context"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
)

// SessionIndex is the catalog of recorded sessions.
type SessionIndex interface {
	// Add registers a recorded session.
	Add(ctx context.Context, info domain.SessionInfo) error

	// List returns all registered sessions, most recent first.
	List(ctx context.Context) ([]domain.SessionInfo, error)

	// Get retrieves a session by ID or name.
	// Returns domain.ErrNotFound if no session matches.
	Get(ctx context.Context, ref string) (*domain.SessionInfo, error)

	// Remove deletes a session entry by ID or name.
	// Returns domain.ErrNotFound if no session matches.
	Remove(ctx context.Context, ref string) error
}
