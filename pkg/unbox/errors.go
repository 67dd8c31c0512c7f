package unbox

import "errors"

// Error definitions for unbox package.
var (
	ErrSetupCommand = errors.New("setup command failed")
	ErrHookInstall  = errors.New("failed to install git hooks")
	ErrVirtualenv   = errors.New("failed to set up virtualenv")
)
