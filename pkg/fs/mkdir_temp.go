package fs

import "os"

// MkdirTemp creates a fresh temporary directory and returns its path.
func (f *realFS) MkdirTemp(dir, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}
