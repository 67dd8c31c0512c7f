// Package precommit implements the isolated pre-commit verification engine:
// it materializes the staged index into a snapshot, resolves which configured
// checks apply to the staged files, runs them in the snapshot and aggregates
// a commit-blocking decision.
package precommit

import (
	"context"
	"fmt"

	"github.com/lerenn/devbox/pkg/config"
	"github.com/lerenn/devbox/pkg/git"
	"github.com/lerenn/devbox/pkg/logger"
	"github.com/lerenn/devbox/pkg/snapshot"
)

// Engine runs the whole pre-commit verification for one repository.
type Engine struct {
	git       git.Git
	config    config.Manager
	extractor snapshot.Extractor
	runner    *Runner
	logger    logger.Logger
	verbose   bool
}

// NewEngineParams contains parameters for creating a new Engine instance.
type NewEngineParams struct {
	Git       git.Git
	Config    config.Manager
	Extractor snapshot.Extractor
	Runner    *Runner
	Logger    logger.Logger
	Verbose   bool
}

// NewEngine creates a new Engine instance.
func NewEngine(params NewEngineParams) *Engine {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Engine{
		git:       params.Git,
		config:    params.Config,
		extractor: params.Extractor,
		runner:    params.Runner,
		logger:    log,
		verbose:   params.Verbose,
	}
}

// verbosePrint prints a formatted message only in verbose mode.
func (e *Engine) verbosePrint(msg string, args ...interface{}) {
	if e.verbose {
		e.logger.Logf(msg, args...)
	}
}

// Run verifies the staged state of the repository. Fatal problems (malformed
// configuration, failed extraction) return an error; the caller must treat
// that as a blocked commit. Otherwise the Outcome carries every check
// result, pass or fail.
func (e *Engine) Run(ctx context.Context, repoPath string) (Outcome, error) {
	cfg, err := e.config.Load(repoPath)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to load hook configuration: %w", err)
	}
	hooks := cfg.Hooks()

	files, err := e.git.StagedFiles(repoPath)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to list staged files: %w", err)
	}
	e.verbosePrint("%d staged file(s)", len(files))

	submodules, err := e.git.ListStagedSubmodules(repoPath)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to list submodules: %w", err)
	}

	invocations := Match(files, submodules, hooks)
	if len(invocations) == 0 {
		e.verbosePrint("no checks to run")
		return Outcome{}, nil
	}
	e.verbosePrint("running %d check(s)", len(invocations))

	// Checks never see the working tree: they run against an isolated copy
	// of exactly what the commit would record.
	snap, err := e.extractor.Extract(repoPath)
	if err != nil {
		return Outcome{}, err
	}
	defer func() {
		if releaseErr := snap.Release(); releaseErr != nil {
			e.logger.Logf("warning: failed to remove snapshot directory: %v", releaseErr)
		}
	}()

	results := e.runner.Run(ctx, snap.Path(), invocations, hooks.Timeout)
	return Aggregate(results), nil
}
