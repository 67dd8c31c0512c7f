package git

import (
	"fmt"
	"os/exec"
)

// SubmoduleUpdate initializes and updates submodules recursively.
func (g *realGit) SubmoduleUpdate(repoPath string) error {
	cmd := exec.Command("git", "submodule", "update", "--init", "--recursive")
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git submodule update failed: %w (output: %s)", err, string(output))
	}
	return nil
}
