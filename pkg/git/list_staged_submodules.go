package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// gitlinkMode is the index mode of a submodule (gitlink) entry.
const gitlinkMode = "160000"

// ListStagedSubmodules lists the submodule paths present in the staged tree.
func (g *realGit) ListStagedSubmodules(repoPath string) ([]string, error) {
	cmd := exec.Command("git", "ls-files", "--stage")
	cmd.Dir = repoPath

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git ls-files --stage failed: %w (output: %s)", err, string(output))
	}

	var submodules []string
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line == "" {
			continue
		}
		// Format: "<mode> <object> <stage>\t<path>"
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			continue
		}
		meta := strings.Fields(fields[0])
		if len(meta) > 0 && meta[0] == gitlinkMode {
			submodules = append(submodules, fields[1])
		}
	}
	return submodules, nil
}
