package driven

// SessionEvent signals a change in the sessions directory.
type SessionEvent struct {
	// Path is the affected session file.
	Path string

	// Removed is true when the file was deleted or renamed away.
	Removed bool
}

// SessionWatcher observes the sessions directory for changes so views
// can refresh without polling.
type SessionWatcher interface {
	// Events returns the channel of directory changes. The channel is
	// closed when the watcher is closed.
	Events() <-chan SessionEvent

	// Close stops watching and releases resources.
	Close() error
}
