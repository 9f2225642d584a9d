// Package driving defines the primary ports: the interfaces through
// which the CLI and TUI adapters drive the core services.
package driving
