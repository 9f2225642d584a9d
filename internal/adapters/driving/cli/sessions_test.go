package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driven"
)

func catalogWith(sessions ...domain.SessionInfo) *mockCatalogService {
	return &mockCatalogService{sessions: sessions}
}

func TestSessionsCmd_ListEmpty(t *testing.T) {
	cleanup := setupCLITest(catalogWith(), &mockSettingsService{}, &mockSessionStore{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sessions", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No sessions recorded.")
}

func TestSessionsCmd_List(t *testing.T) {
	catalog := catalogWith(domain.SessionInfo{
		ID:         "id-1",
		Name:       "canyon-run",
		Path:       "/tmp/canyon-run.json",
		Records:    42,
		Duration:   1400 * time.Millisecond,
		RecordedAt: time.Date(2026, 5, 2, 15, 4, 5, 0, time.UTC),
	})
	cleanup := setupCLITest(catalog, &mockSettingsService{}, &mockSessionStore{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sessions", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "canyon-run")
	assert.Contains(t, buf.String(), "42")
	assert.Contains(t, buf.String(), "2026-05-02")
}

func TestSessionsCmd_ListErrors(t *testing.T) {
	catalog := &mockCatalogService{listErr: assert.AnError}
	cleanup := setupCLITest(catalog, &mockSettingsService{}, &mockSessionStore{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"sessions", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestSessionsCmd_Show(t *testing.T) {
	info := domain.SessionInfo{
		ID:         "id-1",
		Name:       "canyon-run",
		Path:       "/tmp/canyon-run.json",
		Records:    3,
		Duration:   99 * time.Millisecond,
		RecordedAt: time.Date(2026, 5, 2, 15, 4, 5, 0, time.UTC),
	}
	store := &mockSessionStore{logs: map[string]*domain.SessionLog{
		"/tmp/canyon-run.json": {Records: make([]domain.ControlVector, 3)},
	}}
	cleanup := setupCLITest(catalogWith(info), &mockSettingsService{}, store)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sessions", "show", "canyon-run"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ID:       id-1")
	assert.Contains(t, buf.String(), "Name:     canyon-run")
	assert.Contains(t, buf.String(), "3 records on disk")
}

func TestSessionsCmd_ShowUnknown(t *testing.T) {
	cleanup := setupCLITest(catalogWith(), &mockSettingsService{}, &mockSessionStore{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"sessions", "show", "nope"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionsCmd_ShowUnreadableLog(t *testing.T) {
	info := domain.SessionInfo{ID: "id-1", Name: "ghost", Path: "/tmp/ghost.json"}
	store := &mockSessionStore{loadErr: domain.ErrSessionCorrupt}
	cleanup := setupCLITest(catalogWith(info), &mockSettingsService{}, store)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sessions", "show", "ghost"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "unreadable")
}

func TestSessionsCmd_Rm(t *testing.T) {
	catalog := catalogWith(domain.SessionInfo{ID: "id-1", Name: "bye"})
	cleanup := setupCLITest(catalog, &mockSettingsService{}, &mockSessionStore{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sessions", "rm", "bye"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, []string{"bye"}, catalog.removed)
	assert.Contains(t, buf.String(), "Removed session")
}

func TestSessionsCmd_RmError(t *testing.T) {
	catalog := &mockCatalogService{removeErr: domain.ErrNotFound}
	cleanup := setupCLITest(catalog, &mockSettingsService{}, &mockSessionStore{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"sessions", "rm", "nope"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// stubWatcher implements driven.SessionWatcher with a pre-closed
// channel so the watch loop exits immediately.
type stubWatcher struct {
	events chan driven.SessionEvent
	closed bool
}

func newStubWatcher(events ...driven.SessionEvent) *stubWatcher {
	ch := make(chan driven.SessionEvent, len(events))
	for _, e := range events {
		ch <- e
	}
	close(ch)
	return &stubWatcher{events: ch}
}

func (w *stubWatcher) Events() <-chan driven.SessionEvent { return w.events }
func (w *stubWatcher) Close() error                       { w.closed = true; return nil }

func TestSessionsCmd_ListWatch(t *testing.T) {
	settings := &mockSettingsService{settings: testDeckSettings("/tmp/sessions")}
	cleanup := setupCLITest(catalogWith(), settings, &mockSessionStore{})
	defer cleanup()

	watcher := newStubWatcher(
		driven.SessionEvent{Path: "/tmp/sessions/a.json"},
		driven.SessionEvent{Path: "/tmp/sessions/b.json", Removed: true},
	)
	newWatcher = func(string) (driven.SessionWatcher, error) {
		return watcher, nil
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sessions", "list", "--watch"})
	defer func() {
		rootCmd.SetArgs(nil)
		sessionsWatch = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Watching /tmp/sessions")
	assert.Contains(t, buf.String(), "changed /tmp/sessions/a.json")
	assert.Contains(t, buf.String(), "removed /tmp/sessions/b.json")
	assert.True(t, watcher.closed)
}
