package precommit

import (
	"path"
	"strings"

	"github.com/lerenn/devbox/pkg/config"
)

// Invocation is one resolved check command, ready to execute inside the
// snapshot.
type Invocation struct {
	// Args is the full argv, including the appended trigger file for
	// pattern-resolved invocations.
	Args []string

	// File is the staged file that triggered the invocation. Empty for
	// unconditional commands.
	File string

	// Dir is the working directory relative to the snapshot root. Empty
	// means the snapshot root itself; file-triggered invocations inside a
	// submodule run in the submodule's subdirectory.
	Dir string
}

// Match resolves which commands apply to the staged files.
//
// Unconditional commands come first, one invocation each. Then, for every
// staged file in version-control-reported order, every configured pattern is
// tried in file order: each match emits one invocation per command with the
// file path appended. A file matching several patterns yields several
// invocations; nothing is deduplicated.
func Match(files, submodules []string, hooks config.HookConfig) []Invocation {
	var invocations []Invocation

	for _, cmd := range hooks.All {
		invocations = append(invocations, Invocation{Args: cmd})
	}

	for _, file := range files {
		dir, relFile := splitSubmodulePath(file, submodules)
		for _, ph := range hooks.Modified {
			if !matchPattern(ph.Pattern, relFile) {
				continue
			}
			for _, cmd := range ph.Commands {
				args := make([]string, 0, len(cmd)+1)
				args = append(args, cmd...)
				args = append(args, relFile)
				invocations = append(invocations, Invocation{
					Args: args,
					File: file,
					Dir:  dir,
				})
			}
		}
	}

	return invocations
}

// matchPattern applies shell-glob semantics to the repo-relative path. A
// pattern without a separator also matches against the basename, so "*.py"
// catches files in subdirectories.
func matchPattern(pattern, file string) bool {
	if ok, err := path.Match(pattern, file); err == nil && ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		if ok, err := path.Match(pattern, path.Base(file)); err == nil && ok {
			return true
		}
	}
	return false
}

// splitSubmodulePath returns the submodule directory containing the file (if
// any) and the file path relative to it.
func splitSubmodulePath(file string, submodules []string) (dir, rel string) {
	for _, sub := range submodules {
		if strings.HasPrefix(file, sub+"/") {
			return sub, strings.TrimPrefix(file, sub+"/")
		}
	}
	return "", file
}
