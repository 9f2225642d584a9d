// Package domain contains the core business entities for drivedeck:
// the vehicle control vector, the steering smoothing state, operating
// modes, and the recorded session log. Everything in this package is
// pure; persistence and presentation live in the adapters.
package domain
