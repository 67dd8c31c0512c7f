package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// StagedFiles lists the paths that are modified and staged for commit.
// Deleted files are excluded: a check cannot run on a file that will no
// longer exist after the commit.
func (g *realGit) StagedFiles(repoPath string) ([]string, error) {
	cmd := exec.Command("git", "diff", "--cached", "--name-only", "--diff-filter=ACMR")
	cmd.Dir = repoPath

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git diff --cached failed: %w (output: %s)", err, string(output))
	}

	var files []string
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}
