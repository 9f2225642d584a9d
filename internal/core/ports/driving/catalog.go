package driving

import (
	"context"
	"time"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
)

// CatalogService manages the catalog of recorded sessions.
type CatalogService interface {
	// Register adds a freshly recorded session to the catalog and
	// returns the stored entry.
	Register(ctx context.Context, name, path string, records int, duration time.Duration) (domain.SessionInfo, error)

	// List returns all catalogued sessions, most recent first.
	List(ctx context.Context) ([]domain.SessionInfo, error)

	// Resolve finds a session by ID, name, or file path. A ref that
	// points at an existing file outside the catalog resolves to an
	// uncatalogued entry with only Path set.
	Resolve(ctx context.Context, ref string) (*domain.SessionInfo, error)

	// Remove deletes a catalog entry and its session file.
	Remove(ctx context.Context, ref string) error
}
