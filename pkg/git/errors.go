// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrNotARepository = errors.New("not a git repository")
	ErrNoTags         = errors.New("no tags found")
)
