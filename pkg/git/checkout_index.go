package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// CheckoutIndex extracts the staged index content into the target directory.
func (g *realGit) CheckoutIndex(repoPath, targetDir string) error {
	// checkout-index requires the prefix to end with a separator
	prefix := targetDir
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	cmd := exec.Command("git", "checkout-index", "--all", "--force", "--prefix="+prefix)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git checkout-index failed: %w (command: git checkout-index --all --force --prefix=%s, output: %s)",
			err, prefix, string(output))
	}
	return nil
}
