package create

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/devbox/pkg/config"
)

// configurePython fills in the python project template: lint hooks on
// modified files, a virtualenv, requirements and autoenv scaffolding.
func (c *realCreator) configurePython(cfg *config.Config, repo string) error {
	abs, err := filepath.Abs(repo)
	if err != nil {
		return fmt.Errorf("failed to resolve repository path: %w", err)
	}
	venv := filepath.Base(abs) + "_env"
	cfg.Env = &config.Env{Path: venv}

	var pyHooks []config.Command
	var requirements []string

	runPylint, err := c.prompt.PromptForConfirmation("Run pylint on commit?", true)
	if err != nil {
		return err
	}
	if runPylint {
		pyHooks = append(pyHooks, config.Command{"pylint", "--rcfile=.pylintrc"})
		requirements = append(requirements, "pylint")
	}

	runPep8, err := c.prompt.PromptForConfirmation("Run pep8 on commit?", true)
	if err != nil {
		return err
	}
	if runPep8 {
		pyHooks = append(pyHooks, config.Command{"pep8", "--config=.pep8.ini"})
		requirements = append(requirements, "pep8")
	}

	runPyflakes, err := c.prompt.PromptForConfirmation("Run pyflakes on commit?", false)
	if err != nil {
		return err
	}
	if runPyflakes {
		pyHooks = append(pyHooks, config.Command{"pyflakes"})
		requirements = append(requirements, "pyflakes")
	}

	if len(pyHooks) > 0 {
		cfg.HooksModified = appendPatternHooks(cfg.HooksModified, "*.py", pyHooks)
	}

	if len(requirements) > 0 {
		requirementsPath := filepath.Join(repo, "requirements_dev.txt")
		if err := c.fs.AppendLines(requirementsPath, requirements); err != nil {
			return fmt.Errorf("failed to write requirements file: %w", err)
		}
		cfg.PostSetup = append(cfg.PostSetup,
			config.Command{"pip", "install", "-r", "requirements_dev.txt"})
	}
	cfg.PostSetup = append(cfg.PostSetup, config.Command{"pip", "install", "-e", "."})

	useAutoenv, err := c.prompt.PromptForConfirmation("Use autoenv?", true)
	if err != nil {
		return err
	}
	if useAutoenv {
		cfg.Autoenv = true
		if err := c.writeAutoenvFile(repo, venv); err != nil {
			return err
		}
	}

	// Keep the virtualenv out of version control
	if err := c.fs.AppendLines(filepath.Join(repo, ".gitignore"), []string{venv + "/"}); err != nil {
		return fmt.Errorf("failed to update .gitignore: %w", err)
	}

	return nil
}

// appendPatternHooks adds commands under a pattern, extending the pattern's
// entry when it already exists so configured order is kept.
func appendPatternHooks(hooks []config.PatternHooks, pattern string, commands []config.Command) []config.PatternHooks {
	for i := range hooks {
		if hooks[i].Pattern == pattern {
			hooks[i].Commands = append(hooks[i].Commands, commands...)
			return hooks
		}
	}
	return append(hooks, config.PatternHooks{Pattern: pattern, Commands: commands})
}

// writeAutoenvFile writes the .env file that activates the virtualenv when
// entering the repository directory.
func (c *realCreator) writeAutoenvFile(repo, venv string) error {
	lines := []string{
		`_envdir=$(dirname ${_files[_file-__array_offset]})`,
		`source $_envdir/` + venv + `/bin/activate`,
	}
	if err := c.fs.AppendLines(filepath.Join(repo, ".env"), lines); err != nil {
		return fmt.Errorf("failed to write autoenv file: %w", err)
	}
	return nil
}
