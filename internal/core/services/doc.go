// Package services implements the core business logic behind the
// driving ports: the session controller state machine, the session
// catalog, and deck settings.
package services
