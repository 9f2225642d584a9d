package driven

import (
	"context"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
)

// SessionStore persists session logs.
// Implementations handle the on-disk format (JSON files, in-memory for
// tests). The controller decides how load failures are treated.
type SessionStore interface {
	// Load reads the session log at path.
	// A file that exists but cannot be decoded returns an error
	// wrapping domain.ErrSessionCorrupt.
	Load(ctx context.Context, path string) (*domain.SessionLog, error)

	// Save writes the session log to path, replacing any previous
	// content. The write is atomic: a failed save never leaves a
	// truncated log behind.
	Save(ctx context.Context, path string, log *domain.SessionLog) error
}
