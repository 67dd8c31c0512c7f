// Package version derives the tool version from git tag metadata.
package version

import (
	"regexp"
	"strings"

	"github.com/lerenn/devbox/pkg/git"
)

// Fallback is the compiled-in version used when no git metadata is
// available. Override at build time with
// -ldflags "-X github.com/lerenn/devbox/pkg/version.Fallback=...".
var Fallback = "0.0.0"

// devBuildPattern matches describe output for commits past a tag:
// <tag>-<count>-g<hash>, optionally with a -dirty suffix.
var devBuildPattern = regexp.MustCompile(`^(.*)-([0-9]+)-g[0-9a-f]+$`)

// FromDescribe converts `git describe --tags` output to a version string.
// An exact tag maps to itself ("v1.2.3" -> "1.2.3"); a tag with commits on
// top maps to a dev build ("v1.2.3-4-gabc1234" -> "1.2.3.dev4").
func FromDescribe(description string) string {
	description = strings.TrimSuffix(strings.TrimSpace(description), "-dirty")

	if matches := devBuildPattern.FindStringSubmatch(description); len(matches) == 3 {
		description = matches[1] + ".dev" + matches[2]
	}

	return strings.TrimPrefix(description, "v")
}

// Resolve returns the version for the source tree at repoPath, falling back
// to the compiled-in default when the tree carries no tag information.
func Resolve(g git.Git, repoPath string) string {
	description, err := g.Describe(repoPath)
	if err != nil {
		return Fallback
	}
	return FromDescribe(description)
}
