// Package fs provides the file system operations devbox needs for
// scaffolding, unboxing and snapshot management.
package fs

import "os"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fs.go -destination=mockfs.gen.go -package=fs

// FS interface provides file system operations.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// IsSymlink checks if the path is a symbolic link.
	IsSymlink(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// MkdirTemp creates a fresh temporary directory and returns its path.
	MkdirTemp(dir, pattern string) (string, error)

	// RemoveAll removes a file or directory and all its contents.
	RemoveAll(path string) error

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// CreateFileIfNotExists creates a file with initial content if it doesn't exist.
	CreateFileIfNotExists(filename string, initialContent []byte, perm os.FileMode) error

	// AppendLines appends the lines that are not already present in the file.
	AppendLines(filename string, lines []string) error

	// Symlink creates newname as a symbolic link to oldname.
	Symlink(oldname, newname string) error

	// MakeExecutable adds the executable bits to a file's permissions.
	MakeExecutable(path string) error

	// Which finds the executable path for a command using the system's PATH.
	Which(command string) (string, error)
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
