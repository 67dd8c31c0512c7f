package fs

import "os"

// MakeExecutable adds the executable bits to a file's permissions.
func (f *realFS) MakeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.Chmod(path, info.Mode()|0111)
}
