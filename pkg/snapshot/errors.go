package snapshot

import "errors"

// Error definitions for snapshot package.
var (
	// ErrExtraction indicates the staged index could not be fully
	// materialized. It is fatal to the whole pre-commit run.
	ErrExtraction = errors.New("staged index extraction failed")
)
