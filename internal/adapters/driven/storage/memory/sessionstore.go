// Package memory provides in-memory implementations of the driven
// storage ports, used in tests and wherever persistence is not needed.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
type SessionStore struct {
	mu   sync.RWMutex
	logs map[string]*domain.SessionLog
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		logs: make(map[string]*domain.SessionLog),
	}
}

// Load retrieves the session log stored under path.
func (s *SessionStore) Load(_ context.Context, path string) (*domain.SessionLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log, ok := s.logs[path]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", path, domain.ErrNotFound)
	}
	return log.Clone(), nil
}

// Save stores a copy of the session log under path.
func (s *SessionStore) Save(_ context.Context, path string, log *domain.SessionLog) error {
	if log == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[path] = log.Clone()
	return nil
}
