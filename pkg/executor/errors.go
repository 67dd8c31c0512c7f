package executor

import "errors"

// Error definitions for executor package.
var (
	// ErrSpawn indicates a command could not be started at all.
	ErrSpawn = errors.New("command could not be started")

	// ErrTimeout indicates a command exceeded its maximum duration.
	ErrTimeout = errors.New("command timed out")
)
