package unbox

import (
	"fmt"
	"path/filepath"
)

// hooksDir is the repository directory holding versioned git hooks.
const hooksDir = "git_hooks"

// setupGitHooks replaces .git/hooks with a symlink to the repository's
// git_hooks directory, so the hooks are version controlled. A hooks dir that
// is already a symlink is left alone.
func (u *realUnboxer) setupGitHooks(dest string) error {
	exists, err := u.fs.Exists(filepath.Join(dest, hooksDir))
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", hooksDir, err)
	}
	if !exists {
		return nil
	}

	gitHooksPath := filepath.Join(dest, ".git", "hooks")
	isLink, err := u.fs.IsSymlink(gitHooksPath)
	if err != nil {
		return fmt.Errorf("failed to check .git/hooks: %w", err)
	}
	if isLink {
		return nil
	}

	u.logger.Logf("Installing git hooks")
	if err := u.fs.RemoveAll(gitHooksPath); err != nil {
		return fmt.Errorf("%w: %v", ErrHookInstall, err)
	}
	if err := u.fs.Symlink(filepath.Join("..", hooksDir), gitHooksPath); err != nil {
		return fmt.Errorf("%w: %v", ErrHookInstall, err)
	}
	return nil
}
