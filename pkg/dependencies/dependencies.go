// Package dependencies provides a centralized dependency container for the
// devbox application. This package follows Go idioms for dependency injection
// by grouping related dependencies together and providing a fluent API for
// configuration.
package dependencies

import (
	"errors"

	"github.com/lerenn/devbox/pkg/config"
	"github.com/lerenn/devbox/pkg/executor"
	"github.com/lerenn/devbox/pkg/forge"
	"github.com/lerenn/devbox/pkg/fs"
	"github.com/lerenn/devbox/pkg/git"
	"github.com/lerenn/devbox/pkg/logger"
	"github.com/lerenn/devbox/pkg/prompt"
	"github.com/lerenn/devbox/pkg/snapshot"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing        = errors.New("fs dependency is required but not set")
	ErrGitMissing       = errors.New("git dependency is required but not set")
	ErrConfigMissing    = errors.New("config dependency is required but not set")
	ErrExecutorMissing  = errors.New("executor dependency is required but not set")
	ErrLoggerMissing    = errors.New("logger dependency is required but not set")
	ErrPromptMissing    = errors.New("prompt dependency is required but not set")
	ErrResolverMissing  = errors.New("resolver dependency is required but not set")
	ErrExtractorMissing = errors.New("extractor dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
// This follows the Go idiom of grouping related data together.
type Dependencies struct {
	FS        fs.FS
	Git       git.Git
	Config    config.Manager
	Executor  executor.Executor
	Logger    logger.Logger
	Prompt    prompt.Prompter
	Resolver  forge.ResolverInterface
	Extractor snapshot.Extractor
}

// New creates a new Dependencies instance with sensible defaults.
// This follows Go's convention of New* functions for constructors.
func New() *Dependencies {
	filesystem := fs.NewFS()
	gitClient := git.NewGit()
	log := logger.NewNoopLogger()
	return &Dependencies{
		FS:        filesystem,
		Git:       gitClient,
		Config:    config.NewManager(filesystem),
		Executor:  executor.NewExecutor(),
		Logger:    log,
		Prompt:    prompt.NewPrompt(),
		Resolver:  forge.NewManager(log),
		Extractor: snapshot.NewExtractor(filesystem, gitClient),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithExecutor sets the executor and returns the instance for chaining.
func (d *Dependencies) WithExecutor(exec executor.Executor) *Dependencies {
	d.Executor = exec
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithResolver sets the forge resolver and returns the instance for chaining.
func (d *Dependencies) WithResolver(resolver forge.ResolverInterface) *Dependencies {
	d.Resolver = resolver
	return d
}

// WithExtractor sets the snapshot extractor and returns the instance for chaining.
func (d *Dependencies) WithExtractor(extractor snapshot.Extractor) *Dependencies {
	d.Extractor = extractor
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Executor, ErrExecutorMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.Resolver, ErrResolverMissing},
		{d.Extractor, ErrExtractorMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
