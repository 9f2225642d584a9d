// Package sqlite implements the session index on SQLite via the pure
// Go modernc.org/sqlite driver. The schema is managed through embedded
// migrations applied at startup.
package sqlite
