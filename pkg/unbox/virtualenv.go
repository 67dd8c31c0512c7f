package unbox

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lerenn/devbox/pkg/config"
	"github.com/lerenn/devbox/pkg/executor"
)

// createVirtualenv creates the configured virtualenv, or symlinks to an
// existing one (an explicit venv path, or the parent repository's). It
// returns the absolute path of the resulting virtualenv.
func (u *realUnboxer) createVirtualenv(
	ctx context.Context,
	dest string,
	env *config.Env,
	venvBin, venv, parent string,
) (string, error) {
	envPath := filepath.Join(dest, env.Path)

	// Installed as a dependency: share the caller's virtualenv.
	if venv != "" {
		if err := u.symlinkIfMissing(venv, envPath); err != nil {
			return "", err
		}
	}

	// A declared parent repository next to this one shares its virtualenv.
	if parent != "" {
		parentVenv, err := u.parentVirtualenv(dest, parent)
		if err != nil {
			return "", err
		}
		if parentVenv != "" {
			if err := u.symlinkIfMissing(parentVenv, envPath); err != nil {
				return "", err
			}
		}
	}

	exists, err := u.fs.Exists(envPath)
	if err != nil {
		return "", fmt.Errorf("failed to check virtualenv path: %w", err)
	}
	if !exists {
		if _, err := u.fs.Which(venvBin); err != nil {
			return "", fmt.Errorf("%w: %s not found: %v", ErrVirtualenv, venvBin, err)
		}

		u.logger.Logf("Creating virtualenv")
		args := append([]string{venvBin}, env.Args...)
		args = append(args, env.Path)
		result, err := u.executor.Execute(ctx, executor.ExecuteParams{Dir: dest, Args: args})
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrVirtualenv, err)
		}
		if result.ExitCode != 0 {
			return "", fmt.Errorf("%w: %s exited with status %d:\n%s",
				ErrVirtualenv, strings.Join(args, " "), result.ExitCode, result.Output)
		}
	}

	abs, err := filepath.Abs(envPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve virtualenv path: %w", err)
	}
	return abs, nil
}

// parentVirtualenv returns the path of the parent repository's virtualenv,
// or empty when the parent or its virtualenv is absent.
func (u *realUnboxer) parentVirtualenv(dest, parent string) (string, error) {
	parentPath := filepath.Join(filepath.Dir(dest), parent)
	exists, err := u.fs.Exists(parentPath)
	if err != nil || !exists {
		return "", err
	}

	parentConf, err := u.config.Load(parentPath)
	if err != nil {
		return "", fmt.Errorf("failed to load parent configuration: %w", err)
	}
	if parentConf.Env == nil {
		return "", nil
	}

	parentVenv := filepath.Join(parentPath, parentConf.Env.Path)
	exists, err = u.fs.Exists(parentVenv)
	if err != nil || !exists {
		return "", err
	}
	return parentVenv, nil
}

// symlinkIfMissing symlinks target at linkPath unless something is already
// there.
func (u *realUnboxer) symlinkIfMissing(target, linkPath string) error {
	exists, err := u.fs.Exists(linkPath)
	if err != nil {
		return fmt.Errorf("failed to check virtualenv path: %w", err)
	}
	if exists {
		return nil
	}
	if err := u.fs.Symlink(target, linkPath); err != nil {
		return fmt.Errorf("%w: %v", ErrVirtualenv, err)
	}
	return nil
}

// postSetupEnv builds the environment for post_setup commands: the
// virtualenv's bin directory is prepended to PATH so installed tools win.
func (u *realUnboxer) postSetupEnv(cfg *config.Config) []string {
	if cfg.Env == nil {
		return nil
	}

	binDir := filepath.Join(cfg.Env.Path, "bin")
	env := os.Environ()
	for i, entry := range env {
		if strings.HasPrefix(entry, "PATH=") {
			env[i] = "PATH=" + binDir + string(os.PathListSeparator) + strings.TrimPrefix(entry, "PATH=")
			return env
		}
	}
	return append(env, "PATH="+binDir)
}
