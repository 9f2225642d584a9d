package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driven"
	"github.com/drivedeck-labs/drivedeck-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.SessionWatcher = (*Watcher)(nil)

// Watcher emits an event whenever a session file in the watched
// directory is written, removed, or renamed.
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan driven.SessionEvent
	once   sync.Once
}

// NewWatcher starts watching dir for session file changes. The
// directory is created if it does not exist yet.
func NewWatcher(dir string) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating sessions directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:    fsw,
		events: make(chan driven.SessionEvent, 16),
	}
	go w.loop()
	return w, nil
}

// loop translates fsnotify events into session events until the
// underlying watcher is closed.
func (w *Watcher) loop() {
	defer close(w.events)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !isSessionFile(ev.Name) {
				continue
			}
			w.events <- driven.SessionEvent{
				Path:    ev.Name,
				Removed: ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0,
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("session watcher: %v", err)
		}
	}
}

// isSessionFile filters out temp files and non-session content.
func isSessionFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, ".json") && !strings.HasPrefix(base, ".")
}

// Events returns the channel of directory changes.
func (w *Watcher) Events() <-chan driven.SessionEvent {
	return w.events
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.fsw.Close()
	})
	return err
}
