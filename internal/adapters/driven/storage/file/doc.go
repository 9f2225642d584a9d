// Package file persists session logs as JSON documents on disk and
// watches the sessions directory for changes.
package file
