package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// RepositoryRoot returns the root directory of the repository containing dir.
func (g *realGit) RepositoryRoot(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %s (output: %s)", ErrNotARepository, dir, string(output))
	}

	return strings.TrimSpace(string(output)), nil
}
