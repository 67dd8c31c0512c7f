package create

import "errors"

// Error definitions for create package.
var (
	ErrAlreadyExists = errors.New("repository already exists, pass --force to scaffold into it")
	ErrNotADirectory = errors.New("repository path is not a directory")
)
