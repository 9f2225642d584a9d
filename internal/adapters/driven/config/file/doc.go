// Package file provides file-based configuration: the TOML config
// store behind driven.ConfigStore, and the parser for the legacy
// two-line session conf format.
package file
