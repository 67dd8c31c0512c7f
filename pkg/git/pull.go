package git

import (
	"fmt"
	"os/exec"
)

// Pull updates the repository with a fast-forward only pull, so local
// changes are never discarded.
func (g *realGit) Pull(repoPath string) error {
	cmd := exec.Command("git", "pull", "--ff-only")
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git pull --ff-only failed: %w (output: %s)", err, string(output))
	}
	return nil
}
