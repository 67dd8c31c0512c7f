// Package config provides the box configuration model and error definitions.
package config

import "errors"

// Error definitions for config package.
var (
	// ErrUnknownKey indicates an unrecognized key in the configuration file.
	ErrUnknownKey = errors.New("unknown configuration key")

	// ErrInvalidShape indicates a configuration value of the wrong shape.
	ErrInvalidShape = errors.New("invalid configuration value")

	// ErrBadPattern indicates a malformed glob pattern in hooks_modified.
	ErrBadPattern = errors.New("malformed glob pattern")
)
