package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driven"
)

// sessionIndex implements driven.SessionIndex.
type sessionIndex struct {
	store *Store
}

var _ driven.SessionIndex = (*sessionIndex)(nil)

// Add registers a recorded session.
func (s *sessionIndex) Add(ctx context.Context, info domain.SessionInfo) error {
	if info.ID == "" || info.Name == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO sessions (id, name, path, records, duration_ms, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, info.ID, info.Name, info.Path, info.Records,
		info.Duration.Milliseconds(),
		info.RecordedAt.UTC().Format(time.RFC3339Nano))

	if err != nil {
		// UNIQUE constraint on name.
		if isConstraintErr(err) {
			return fmt.Errorf("session %q: %w", info.Name, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("adding session: %w", err)
	}
	return nil
}

// List returns all registered sessions, most recent first.
func (s *sessionIndex) List(ctx context.Context) ([]domain.SessionInfo, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, path, records, duration_ms, recorded_at
		FROM sessions
		ORDER BY recorded_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.SessionInfo //nolint:prealloc // size unknown from query
	for rows.Next() {
		info, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// Get retrieves a session by ID or name.
func (s *sessionIndex) Get(ctx context.Context, ref string) (*domain.SessionInfo, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, path, records, duration_ms, recorded_at
		FROM sessions WHERE id = ? OR name = ?
	`, ref, ref)

	info, err := scanSession(row)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// Remove deletes a session entry by ID or name.
func (s *sessionIndex) Remove(ctx context.Context, ref string) error {
	result, err := s.store.db.ExecContext(ctx,
		"DELETE FROM sessions WHERE id = ? OR name = ?", ref, ref)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session %q: %w", ref, domain.ErrNotFound)
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanSession.
type scanner interface {
	Scan(dest ...any) error
}

// scanSession reads one session row.
func scanSession(row scanner) (*domain.SessionInfo, error) {
	var (
		info       domain.SessionInfo
		durationMS int64
		recordedAt string
	)

	err := row.Scan(&info.ID, &info.Name, &info.Path, &info.Records, &durationMS, &recordedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	info.Duration = time.Duration(durationMS) * time.Millisecond
	info.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing recorded_at: %w", err)
	}
	return &info, nil
}

// isConstraintErr reports whether err is a SQLite constraint violation.
// The modernc driver exposes these as plain error strings.
func isConstraintErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint")
}
