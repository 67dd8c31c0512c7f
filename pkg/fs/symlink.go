package fs

import "os"

// Symlink creates newname as a symbolic link to oldname.
func (f *realFS) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}
