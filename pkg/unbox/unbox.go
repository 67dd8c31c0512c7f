// Package unbox implements the clone-and-setup flow: clone a repository,
// update it, install git hooks, create or share a virtualenv, and unbox its
// declared dependencies alongside it.
package unbox

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/devbox/pkg/config"
	"github.com/lerenn/devbox/pkg/executor"
	"github.com/lerenn/devbox/pkg/forge"
	"github.com/lerenn/devbox/pkg/fs"
	"github.com/lerenn/devbox/pkg/git"
	"github.com/lerenn/devbox/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=unbox.go -destination=mockunbox.gen.go -package=unbox

// DefaultVenvBin is the virtualenv binary used when none is configured.
const DefaultVenvBin = "virtualenv"

// UnboxParams contains parameters for Unbox.
type UnboxParams struct {
	// RepoRef is a git URL, an owner/repo shorthand, or a path to an
	// already cloned repository.
	RepoRef string

	// Dest is the directory to clone into. Empty derives it from RepoRef.
	Dest string

	// NoDeps disables unboxing of the repository's declared dependencies.
	NoDeps bool

	// VenvBin is the virtualenv binary. Empty uses DefaultVenvBin.
	VenvBin string

	// Venv is an existing virtualenv to symlink instead of creating one.
	Venv string
}

// Unboxer interface provides repository unboxing.
type Unboxer interface {
	// Unbox clones and sets up a repository for development.
	Unbox(ctx context.Context, params UnboxParams) error
}

type realUnboxer struct {
	fs       fs.FS
	git      git.Git
	config   config.Manager
	executor executor.Executor
	resolver forge.ResolverInterface
	logger   logger.Logger
}

// NewUnboxerParams contains parameters for creating a new Unboxer instance.
type NewUnboxerParams struct {
	FS       fs.FS
	Git      git.Git
	Config   config.Manager
	Executor executor.Executor
	Resolver forge.ResolverInterface
	Logger   logger.Logger
}

// NewUnboxer creates a new Unboxer instance.
func NewUnboxer(params NewUnboxerParams) Unboxer {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realUnboxer{
		fs:       params.FS,
		git:      params.Git,
		config:   params.Config,
		executor: params.Executor,
		resolver: params.Resolver,
		logger:   log,
	}
}

// Unbox clones and sets up a repository for development.
func (u *realUnboxer) Unbox(ctx context.Context, params UnboxParams) error {
	if params.VenvBin == "" {
		params.VenvBin = DefaultVenvBin
	}

	cloneURL, dest, err := u.resolveDestination(ctx, params.RepoRef, params.Dest)
	if err != nil {
		return err
	}

	if err := u.cloneIfMissing(cloneURL, dest); err != nil {
		return err
	}

	u.updateRepo(dest)

	cfg, err := u.config.Load(dest)
	if err != nil {
		return fmt.Errorf("failed to load configuration for %s: %w", dest, err)
	}

	if err := u.runCommands(ctx, dest, cfg.PreSetup, nil); err != nil {
		return err
	}

	if err := u.setupGitHooks(dest); err != nil {
		return err
	}

	venv := params.Venv
	if cfg.Env != nil {
		venv, err = u.createVirtualenv(ctx, dest, cfg.Env, params.VenvBin, params.Venv, cfg.Parent)
		if err != nil {
			return err
		}
	}

	// Dependencies are unboxed as peers of this repository and share its
	// virtualenv.
	if !params.NoDeps {
		for _, dep := range cfg.Dependencies {
			depParams := UnboxParams{
				RepoRef: dep,
				Dest:    filepath.Join(filepath.Dir(dest), git.RepoNameFromURL(dep)),
				NoDeps:  params.NoDeps,
				VenvBin: params.VenvBin,
				Venv:    venv,
			}
			if err := u.Unbox(ctx, depParams); err != nil {
				return fmt.Errorf("failed to unbox dependency %s: %w", dep, err)
			}
		}
	}

	return u.runCommands(ctx, dest, cfg.PostSetup, u.postSetupEnv(cfg))
}

// resolveDestination turns the repository reference into a clone URL and a
// destination directory. A reference naming an existing local path is used
// in place, so unbox doubles as "set up this checkout".
func (u *realUnboxer) resolveDestination(ctx context.Context, repoRef, dest string) (string, string, error) {
	exists, err := u.fs.Exists(repoRef)
	if err != nil {
		return "", "", fmt.Errorf("failed to check repository path: %w", err)
	}
	if exists && dest == "" {
		return repoRef, repoRef, nil
	}

	info, err := u.resolver.ResolveRepository(ctx, repoRef)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve repository %s: %w", repoRef, err)
	}

	if dest == "" {
		dest = info.Name
	}
	return info.CloneURL, dest, nil
}

// cloneIfMissing clones the repository unless the destination already exists.
func (u *realUnboxer) cloneIfMissing(cloneURL, dest string) error {
	exists, err := u.fs.Exists(dest)
	if err != nil {
		return fmt.Errorf("failed to check destination: %w", err)
	}
	if exists {
		return nil
	}

	u.logger.Logf("Cloning %s", cloneURL)
	if err := u.git.Clone(git.CloneParams{RepoURL: cloneURL, TargetPath: dest}); err != nil {
		return fmt.Errorf("failed to clone %s: %w", cloneURL, err)
	}
	return nil
}

// updateRepo brings the checkout up to date. Updates are best-effort and
// never destructive: a failed fast-forward leaves local changes alone.
func (u *realUnboxer) updateRepo(dest string) {
	u.logger.Logf("Updating %s", dest)
	if err := u.git.Pull(dest); err != nil {
		u.logger.Logf("warning: pull failed: %v", err)
	}
	if err := u.git.SubmoduleUpdate(dest); err != nil {
		u.logger.Logf("warning: submodule update failed: %v", err)
	}
}

// runCommands runs setup commands sequentially in dir, stopping at the first
// failure.
func (u *realUnboxer) runCommands(ctx context.Context, dir string, commands []config.Command, env []string) error {
	for _, command := range commands {
		result, err := u.executor.Execute(ctx, executor.ExecuteParams{
			Dir:  dir,
			Args: command,
			Env:  env,
		})
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSetupCommand, strings.Join(command, " "), err)
		}
		if result.ExitCode != 0 {
			return fmt.Errorf("%w: %s exited with status %d:\n%s",
				ErrSetupCommand, strings.Join(command, " "), result.ExitCode, result.Output)
		}
	}
	return nil
}
