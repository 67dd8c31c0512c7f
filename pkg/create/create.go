// Package create implements interactive repository scaffolding: it creates
// the versioned hook directory, the pre-commit entry script and the box
// configuration file.
package create

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/devbox/pkg/config"
	"github.com/lerenn/devbox/pkg/fs"
	"github.com/lerenn/devbox/pkg/logger"
	"github.com/lerenn/devbox/pkg/prompt"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=create.go -destination=mockcreate.gen.go -package=create

const (
	// hooksDir is the repository directory holding versioned git hooks.
	hooksDir = "git_hooks"

	// precommitScript is the hook entry point inside hooksDir.
	precommitScript = "pre-commit"

	// shebangLine is the first line of a freshly created pre-commit script.
	shebangLine = "#!/bin/bash -e"

	// whitespaceGuard rejects commits introducing whitespace errors.
	whitespaceGuard = "git diff-index --check --cached HEAD --"

	// hookInvocation runs the verification engine from the hook script.
	hookInvocation = "devbox pre-commit"
)

// languageChoices are the project languages offered during scaffolding.
var languageChoices = []prompt.LanguageChoice{
	{Name: "python", Description: "virtualenv, lint hooks and packaging files"},
	{Name: "none", Description: "hook scaffolding only"},
}

// CreateParams contains parameters for Create.
type CreateParams struct {
	// Repo is the path of the repository to scaffold.
	Repo string

	// Force allows scaffolding into an existing directory.
	Force bool
}

// Creator interface provides repository scaffolding.
type Creator interface {
	// Create scaffolds box files into a repository, prompting for choices.
	Create(ctx context.Context, params CreateParams) error
}

type realCreator struct {
	fs     fs.FS
	config config.Manager
	prompt prompt.Prompter
	logger logger.Logger
}

// NewCreatorParams contains parameters for creating a new Creator instance.
type NewCreatorParams struct {
	FS     fs.FS
	Config config.Manager
	Prompt prompt.Prompter
	Logger logger.Logger
}

// NewCreator creates a new Creator instance.
func NewCreator(params NewCreatorParams) Creator {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realCreator{
		fs:     params.FS,
		config: params.Config,
		prompt: params.Prompt,
		logger: log,
	}
}

// Create scaffolds box files into a repository, prompting for choices.
func (c *realCreator) Create(ctx context.Context, params CreateParams) error {
	if params.Repo == "" {
		repo, err := c.prompt.PromptForProjectName(filepath.Base(workingDir()))
		if err != nil {
			return fmt.Errorf("failed to read project name: %w", err)
		}
		params.Repo = repo
	}

	if err := c.ensureRepoDir(params.Repo, params.Force); err != nil {
		return err
	}

	// Existing configuration is extended, not replaced.
	cfg, err := c.config.Load(params.Repo)
	if err != nil {
		return fmt.Errorf("failed to load existing configuration: %w", err)
	}

	language, err := c.prompt.PromptSelectLanguage(languageChoices)
	if err != nil {
		return fmt.Errorf("failed to select language: %w", err)
	}

	checkWhitespace, err := c.prompt.PromptForConfirmation("Prohibit trailing whitespace?", true)
	if err != nil {
		return err
	}

	if err := c.writePrecommitScript(params.Repo, checkWhitespace); err != nil {
		return err
	}

	if language.Name == "python" {
		if err := c.configurePython(cfg, params.Repo); err != nil {
			return err
		}
	}

	dedupeConfig(cfg)

	if err := c.config.Save(params.Repo, cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	c.logger.Logf("Box files created! Now just add and commit them.")
	return nil
}

// ensureRepoDir creates the repository directory, refusing to scaffold into
// an existing one without force.
func (c *realCreator) ensureRepoDir(repo string, force bool) error {
	exists, err := c.fs.Exists(repo)
	if err != nil {
		return fmt.Errorf("failed to check repository path: %w", err)
	}
	if exists {
		isDir, err := c.fs.IsDir(repo)
		if err != nil {
			return fmt.Errorf("failed to check repository path: %w", err)
		}
		if !isDir {
			return fmt.Errorf("%w: %s is not a directory", ErrNotADirectory, repo)
		}
		if !force {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, repo)
		}
		return nil
	}
	if err := c.fs.MkdirAll(repo, 0755); err != nil {
		return fmt.Errorf("failed to create repository directory: %w", err)
	}
	return nil
}

// writePrecommitScript creates git_hooks/pre-commit and appends the guard
// and hook lines that are not yet present.
func (c *realCreator) writePrecommitScript(repo string, checkWhitespace bool) error {
	if err := c.fs.MkdirAll(filepath.Join(repo, hooksDir), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", hooksDir, err)
	}

	scriptPath := filepath.Join(repo, hooksDir, precommitScript)
	if err := c.fs.CreateFileIfNotExists(scriptPath, []byte(shebangLine+"\n"), 0755); err != nil {
		return fmt.Errorf("failed to create pre-commit script: %w", err)
	}

	var lines []string
	if checkWhitespace {
		lines = append(lines, whitespaceGuard)
	}
	lines = append(lines, hookInvocation)
	if err := c.fs.AppendLines(scriptPath, lines); err != nil {
		return fmt.Errorf("failed to update pre-commit script: %w", err)
	}

	if err := c.fs.MakeExecutable(scriptPath); err != nil {
		return fmt.Errorf("failed to mark pre-commit script executable: %w", err)
	}
	return nil
}

// dedupeConfig removes duplicate commands accumulated by repeated runs.
func dedupeConfig(cfg *config.Config) {
	cfg.PreSetup = dedupeCommands(cfg.PreSetup)
	cfg.PostSetup = dedupeCommands(cfg.PostSetup)
	cfg.HooksAll = dedupeCommands(cfg.HooksAll)
	for i := range cfg.HooksModified {
		cfg.HooksModified[i].Commands = dedupeCommands(cfg.HooksModified[i].Commands)
	}
}

// dedupeCommands drops later duplicates, preserving first-seen order.
func dedupeCommands(commands []config.Command) []config.Command {
	seen := make(map[string]bool, len(commands))
	result := commands[:0]
	for _, command := range commands {
		key := fmt.Sprintf("%q", command)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, command)
	}
	return result
}

// workingDir returns the current directory, or "." when it cannot be read.
func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
