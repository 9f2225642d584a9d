package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SessionStore = (*Store)(nil)

// indent is the session file indentation. Four spaces, matching the
// session logs recorded by earlier tooling, so round-trips stay
// byte-identical.
const indent = "    "

// Store reads and writes session logs as JSON files. The document has
// a single "records" field; record keys are emitted in sorted order.
type Store struct{}

// NewStore creates a new file-based session store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the session log at path. A file that cannot be decoded
// returns an error wrapping domain.ErrSessionCorrupt; the caller
// decides whether that is fatal.
func (s *Store) Load(_ context.Context, path string) (*domain.SessionLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading session %s: %w", path, err)
	}

	var log domain.SessionLog
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("decoding session %s: %w", path, domain.ErrSessionCorrupt)
	}
	return &log, nil
}

// Save writes the session log to path. The write goes through a temp
// file in the same directory followed by a rename, so a failed save
// never leaves a truncated log behind.
func (s *Store) Save(_ context.Context, path string, log *domain.SessionLog) error {
	if log == nil {
		return domain.ErrInvalidInput
	}

	// Keep "records": [] rather than null for an empty recording.
	out := log.Clone()
	if out.Records == nil {
		out.Records = []domain.ControlVector{}
	}

	data, err := json.MarshalIndent(out, "", indent)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating sessions directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return fmt.Errorf("creating temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing session %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing session %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing session %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing session %s: %w", path, err)
	}
	return nil
}
