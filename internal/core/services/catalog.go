package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driven"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driving"
	"github.com/drivedeck-labs/drivedeck-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService keeps track of recorded sessions in a session index.
type CatalogService struct {
	index driven.SessionIndex

	// now is injectable for tests.
	now func() time.Time
}

// NewCatalogService creates a catalog service over the given index.
func NewCatalogService(index driven.SessionIndex) *CatalogService {
	return &CatalogService{
		index: index,
		now:   time.Now,
	}
}

// Register adds a freshly recorded session to the catalog.
func (s *CatalogService) Register(ctx context.Context, name, path string, records int, duration time.Duration) (domain.SessionInfo, error) {
	if name == "" || path == "" {
		return domain.SessionInfo{}, fmt.Errorf("%w: session name and path required", domain.ErrInvalidInput)
	}

	info := domain.SessionInfo{
		ID:         uuid.NewString(),
		Name:       name,
		Path:       path,
		Records:    records,
		Duration:   duration,
		RecordedAt: s.now(),
	}

	if err := s.index.Add(ctx, info); err != nil {
		return domain.SessionInfo{}, fmt.Errorf("registering session %q: %w", name, err)
	}
	logger.Debug("catalogued session %q (%d records)", name, records)
	return info, nil
}

// List returns all catalogued sessions, most recent first.
func (s *CatalogService) List(ctx context.Context) ([]domain.SessionInfo, error) {
	sessions, err := s.index.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return sessions, nil
}

// Resolve finds a session by ID, name, or file path. A ref naming an
// existing file that is not in the catalog resolves to an entry with
// only Path set, so ad-hoc session files remain replayable.
func (s *CatalogService) Resolve(ctx context.Context, ref string) (*domain.SessionInfo, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: empty session reference", domain.ErrInvalidInput)
	}

	info, err := s.index.Get(ctx, ref)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("resolving session %q: %w", ref, err)
	}

	if _, statErr := os.Stat(ref); statErr == nil {
		return &domain.SessionInfo{Path: ref}, nil
	}
	return nil, fmt.Errorf("session %q: %w", ref, domain.ErrNotFound)
}

// Remove deletes a catalog entry and its session file.
func (s *CatalogService) Remove(ctx context.Context, ref string) error {
	info, err := s.index.Get(ctx, ref)
	if err != nil {
		return fmt.Errorf("removing session %q: %w", ref, err)
	}

	if err := s.index.Remove(ctx, ref); err != nil {
		return fmt.Errorf("removing session %q: %w", ref, err)
	}

	if err := os.Remove(info.Path); err != nil && !os.IsNotExist(err) {
		// Entry is gone from the index; report the orphaned file.
		return fmt.Errorf("removing session file %s: %w", info.Path, err)
	}
	return nil
}
