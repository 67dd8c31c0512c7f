package forge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// GitHubDomain is the GitHub domain for URL validation.
	GitHubDomain = "github.com"
	// githubAPITimeout bounds every GitHub API call.
	githubAPITimeout = 10 * time.Second
)

// shorthandRegexp matches owner/repo shorthand references.
var shorthandRegexp = regexp.MustCompile(`^([A-Za-z0-9_.\-]+)/([A-Za-z0-9_.\-]+)$`)

// urlRegexp extracts owner and repository from GitHub HTTPS and SSH URLs.
var urlRegexp = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?/?$`)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub() *GitHub {
	var client *github.Client

	// Add authentication if available
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	return &GitHub{
		client: client,
	}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// Matches reports whether the reference is an owner/repo shorthand or a
// GitHub URL.
func (g *GitHub) Matches(repoRef string) bool {
	if shorthandRegexp.MatchString(repoRef) {
		return true
	}
	return strings.Contains(repoRef, GitHubDomain)
}

// Resolve resolves the reference to clone information through the GitHub API.
func (g *GitHub) Resolve(ctx context.Context, repoRef string) (*RepoInfo, error) {
	owner, repo, err := g.parseRepoRef(repoRef)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, githubAPITimeout)
	defer cancel()

	repository, resp, err := g.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, owner, repo)
	}

	return &RepoInfo{
		Owner:         repository.GetOwner().GetLogin(),
		Name:          repository.GetName(),
		CloneURL:      repository.GetCloneURL(),
		DefaultBranch: repository.GetDefaultBranch(),
	}, nil
}

// parseRepoRef extracts owner and repository from a shorthand or a GitHub URL.
func (g *GitHub) parseRepoRef(repoRef string) (owner, repo string, err error) {
	if matches := shorthandRegexp.FindStringSubmatch(repoRef); len(matches) == 3 {
		return matches[1], matches[2], nil
	}

	if matches := urlRegexp.FindStringSubmatch(repoRef); len(matches) == 3 {
		return matches[1], matches[2], nil
	}

	return "", "", fmt.Errorf("%w: %s", ErrInvalidRepoRef, repoRef)
}

// handleGitHubError handles GitHub API errors and returns appropriate error messages.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, owner, repo string) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s/%s", ErrRepositoryNotFound, owner, repo)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN environment variable", ErrUnauthorized)
		case http.StatusForbidden:
			// Check if it's rate limiting
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("failed to fetch repository: %w", err)
}
