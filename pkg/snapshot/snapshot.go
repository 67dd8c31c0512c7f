// Package snapshot materializes the staged git index into an isolated
// temporary directory, so pre-commit checks see exactly what a commit would
// record instead of the possibly dirtier working tree.
package snapshot

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/devbox/pkg/fs"
	"github.com/lerenn/devbox/pkg/git"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=snapshot.go -destination=mocksnapshot.gen.go -package=snapshot

// Snapshot is an extracted copy of the staged index. It owns its temporary
// directory: callers must Release it when done, on every path.
type Snapshot struct {
	path     string
	fs       fs.FS
	released bool
}

// New creates a Snapshot handle for an already-populated directory.
func New(fs fs.FS, path string) *Snapshot {
	return &Snapshot{path: path, fs: fs}
}

// Path returns the snapshot's root directory.
func (s *Snapshot) Path() string {
	return s.path
}

// Release removes the snapshot directory. Safe to call more than once.
func (s *Snapshot) Release() error {
	if s.released {
		return nil
	}
	s.released = true
	return s.fs.RemoveAll(s.path)
}

// Extractor interface provides staged-index extraction.
type Extractor interface {
	// Extract materializes the staged index of the repository, including
	// submodules at their staged paths, into a fresh temporary directory.
	Extract(repoPath string) (*Snapshot, error)
}

type realExtractor struct {
	fs  fs.FS
	git git.Git
}

// NewExtractor creates a new Extractor instance.
func NewExtractor(fs fs.FS, git git.Git) Extractor {
	return &realExtractor{fs: fs, git: git}
}

// extractUnit is one repository to extract: the submodule worklist carries
// these instead of recursing, so deeply nested submodule trees cannot
// exhaust the stack.
type extractUnit struct {
	repoPath  string
	targetDir string
}

// Extract materializes the staged index of the repository.
func (e *realExtractor) Extract(repoPath string) (*Snapshot, error) {
	tmpDir, err := e.fs.MkdirTemp("", "devbox-precommit-*")
	if err != nil {
		return nil, fmt.Errorf("%w: cannot create temporary directory: %v", ErrExtraction, err)
	}

	snap := New(e.fs, tmpDir)

	worklist := []extractUnit{{repoPath: repoPath, targetDir: tmpDir}}
	for len(worklist) > 0 {
		unit := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if err := e.git.CheckoutIndex(unit.repoPath, unit.targetDir); err != nil {
			// A partial snapshot would make checks lie; abort and clean up.
			releaseErr := snap.Release()
			if releaseErr != nil {
				return nil, fmt.Errorf("%w: %v (cleanup also failed: %v)", ErrExtraction, err, releaseErr)
			}
			return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
		}

		submodules, err := e.git.ListStagedSubmodules(unit.repoPath)
		if err != nil {
			if releaseErr := snap.Release(); releaseErr != nil {
				return nil, fmt.Errorf("%w: %v (cleanup also failed: %v)", ErrExtraction, err, releaseErr)
			}
			return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
		}

		for _, sub := range submodules {
			worklist = append(worklist, extractUnit{
				repoPath:  filepath.Join(unit.repoPath, sub),
				targetDir: filepath.Join(unit.targetDir, sub),
			})
		}
	}

	return snap, nil
}
