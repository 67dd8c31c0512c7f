package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mockgit.gen.go -package=git

// Git interface provides Git command execution capabilities.
type Git interface {
	// RepositoryRoot returns the root directory of the repository containing dir.
	RepositoryRoot(dir string) (string, error)

	// StagedFiles lists the paths that are modified and staged for commit.
	StagedFiles(repoPath string) ([]string, error)

	// CheckoutIndex extracts the staged index content into the target directory.
	CheckoutIndex(repoPath, targetDir string) error

	// ListStagedSubmodules lists the submodule paths present in the staged tree.
	ListStagedSubmodules(repoPath string) ([]string, error)

	// Clone clones a repository to the specified path.
	Clone(params CloneParams) error

	// Pull updates the repository with a fast-forward only pull.
	Pull(repoPath string) error

	// SubmoduleUpdate initializes and updates submodules recursively.
	SubmoduleUpdate(repoPath string) error

	// Describe returns the output of `git describe --tags` for the repository.
	Describe(repoPath string) (string, error)
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
