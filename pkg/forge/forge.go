package forge

import (
	"context"
	"fmt"
	"strings"

	"github.com/lerenn/devbox/pkg/git"
	"github.com/lerenn/devbox/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=forge.go -destination=mockforge.gen.go -package=forge

// RepoInfo describes a repository resolved from a reference.
type RepoInfo struct {
	Owner         string
	Name          string
	CloneURL      string
	DefaultBranch string
}

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// Matches reports whether the repository reference belongs to this forge
	Matches(repoRef string) bool

	// Resolve resolves a repository reference to clone information
	Resolve(ctx context.Context, repoRef string) (*RepoInfo, error)
}

// ResolverInterface defines the interface for repository reference resolution.
type ResolverInterface interface {
	// ResolveRepository resolves a repository reference using the appropriate forge
	ResolveRepository(ctx context.Context, repoRef string) (*RepoInfo, error)
}

// Manager manages forge implementations and provides a unified interface.
type Manager struct {
	forges map[string]Forge
	logger logger.Logger
}

// NewManager creates a new forge manager with registered forge implementations.
func NewManager(logger logger.Logger) *Manager {
	m := &Manager{
		forges: make(map[string]Forge),
		logger: logger,
	}

	// Register forge implementations
	m.registerForges()

	return m
}

// registerForges registers all available forge implementations.
func (m *Manager) registerForges() {
	// Register GitHub forge
	github := NewGitHub()
	m.forges[github.Name()] = github
}

// GetForge returns the forge implementation for the given name.
func (m *Manager) GetForge(name string) (Forge, error) {
	forge, exists := m.forges[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
	return forge, nil
}

// ResolveRepository resolves a repository reference using the first forge that
// claims it. References no forge claims are treated as plain git URLs and
// passed through unchanged.
func (m *Manager) ResolveRepository(ctx context.Context, repoRef string) (*RepoInfo, error) {
	for _, forge := range m.forges {
		if forge.Matches(repoRef) {
			m.logger.Logf("Resolving %s through %s", repoRef, forge.Name())
			return forge.Resolve(ctx, repoRef)
		}
	}

	if !looksLikeGitURL(repoRef) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRepoRef, repoRef)
	}

	return &RepoInfo{
		Name:     git.RepoNameFromURL(repoRef),
		CloneURL: repoRef,
	}, nil
}

// looksLikeGitURL reports whether the reference is usable as a git clone URL
// without forge resolution.
func looksLikeGitURL(repoRef string) bool {
	switch {
	case strings.HasPrefix(repoRef, "https://"),
		strings.HasPrefix(repoRef, "http://"),
		strings.HasPrefix(repoRef, "ssh://"),
		strings.HasPrefix(repoRef, "git://"),
		strings.HasPrefix(repoRef, "file://"),
		strings.HasPrefix(repoRef, "/"),
		strings.HasPrefix(repoRef, "."):
		return true
	}
	// scp-like syntax: user@host:path
	return strings.Contains(repoRef, "@") && strings.Contains(repoRef, ":")
}
