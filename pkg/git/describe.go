package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Describe returns the output of `git describe --tags` for the repository.
func (g *realGit) Describe(repoPath string) (string, error) {
	cmd := exec.Command("git", "describe", "--tags")
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: git describe --tags failed: %s", ErrNoTags, string(output))
	}

	return strings.TrimSpace(string(output)), nil
}
