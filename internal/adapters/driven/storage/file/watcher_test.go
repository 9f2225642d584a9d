package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driven"
)

// waitForEvent receives the next event matching path, skipping
// intermediate notifications (editors and renames can produce several).
func waitForEvent(t *testing.T, w *Watcher, path string, removed bool) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev, ok := <-w.Events():
			require.True(t, ok, "watcher closed before event arrived")
			if ev.Path == path && ev.Removed == removed {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event on %s (removed=%v)", path, removed)
		}
	}
}

func TestWatcher_SeesNewSessionFile(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "run.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"records": []}`), 0600))

	waitForEvent(t, w, path, false)
}

func TestWatcher_SeesRemovedSessionFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"records": []}`), 0600))

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.Remove(path))
	waitForEvent(t, w, path, true)
}

func TestWatcher_IgnoresNonSessionFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".session-tmp.json"), []byte("x"), 0600))

	// The visible session file must be the first event through.
	path := filepath.Join(dir, "run.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"records": []}`), 0600))

	select {
	case ev := <-w.Events():
		assert.Equal(t, path, ev.Path)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestWatcher_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	assert.DirExists(t, dir)
}

func TestWatcher_CloseIsIdempotentAndClosesChannel(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	select {
	case _, ok := <-w.Events():
		assert.False(t, ok, "events channel should be closed")
	case <-time.After(3 * time.Second):
		t.Fatal("events channel not closed")
	}
}

// Compile-time check that the watcher satisfies the port in tests too.
var _ driven.SessionWatcher = (*Watcher)(nil)
