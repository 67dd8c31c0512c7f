package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Clone clones a repository to the specified path.
func (g *realGit) Clone(params CloneParams) error {
	args := []string{"clone"}

	if params.Recursive {
		args = append(args, "--recurse-submodules")
	}

	args = append(args, params.RepoURL, params.TargetPath)

	cmd := exec.Command("git", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git clone failed: %w (command: git %s, output: %s)",
			err, strings.Join(args, " "), string(output))
	}
	return nil
}
