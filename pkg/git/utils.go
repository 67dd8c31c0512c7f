package git

import "regexp"

var repoNamePattern = regexp.MustCompile(`[A-Za-z0-9_\-]+`)

// RepoNameFromURL parses the repository name out of a git repo URL.
// Works for SSH (git@host:user/repo.git), HTTPS and plain path forms:
// the name is the last word-like component, ignoring a trailing ".git".
func RepoNameFromURL(url string) string {
	words := repoNamePattern.FindAllString(url, -1)
	if len(words) == 0 {
		return ""
	}
	if words[len(words)-1] == "git" && len(words) > 1 {
		words = words[:len(words)-1]
	}
	return words[len(words)-1]
}
