// Package forge resolves repository references (owner/repo shorthand, forge
// URLs) to clone information through the forge APIs.
package forge

import "errors"

// Forge-specific errors
var (
	ErrUnsupportedForge   = errors.New("unsupported forge")
	ErrRepositoryNotFound = errors.New("repository not found")
	ErrInvalidRepoRef     = errors.New("invalid repository reference format")
	ErrRateLimited        = errors.New("rate limited by forge API")
	ErrUnauthorized       = errors.New("unauthorized access to forge API")
)
