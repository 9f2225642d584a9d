// Package driven defines the secondary ports: interfaces the core
// depends on for persistence and infrastructure, implemented by the
// driven adapters.
package driven
