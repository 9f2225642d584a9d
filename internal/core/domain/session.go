package domain

import "time"

// SessionLog is the ordered sequence of control vector snapshots taken
// while recording, one per tick. A log is append-only during recording
// and never mutated after it has been written out.
type SessionLog struct {
	// Records holds one snapshot per tick, in tick order.
	Records []ControlVector `json:"records"`
}

// Append adds a snapshot to the log.
func (l *SessionLog) Append(v ControlVector) {
	l.Records = append(l.Records, v)
}

// Len returns the number of recorded ticks.
func (l *SessionLog) Len() int {
	return len(l.Records)
}

// Clone returns a deep copy of the log.
func (l *SessionLog) Clone() *SessionLog {
	out := &SessionLog{}
	if len(l.Records) > 0 {
		out.Records = make([]ControlVector, len(l.Records))
		copy(out.Records, l.Records)
	}
	return out
}

// TickResult is what one controller tick produces: the control vector
// for the vehicle and, in playback, whether the log has run out.
type TickResult struct {
	// Control is the vector to actuate this tick.
	Control ControlVector

	// Exhausted is true once playback has consumed the whole log. The
	// vector then holds its last value. This is a signal, not an error.
	Exhausted bool
}

// SessionInfo describes a recorded session registered in the catalog.
type SessionInfo struct {
	// ID is the catalog identifier (a UUID).
	ID string

	// Name is the operator-chosen session name.
	Name string

	// Path is the session file location on disk.
	Path string

	// Records is the number of ticks in the session log.
	Records int

	// Duration is the wall-clock length of the recording.
	Duration time.Duration

	// RecordedAt is when the session was recorded.
	RecordedAt time.Time
}
