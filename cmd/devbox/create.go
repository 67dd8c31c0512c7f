package main

import (
	"github.com/spf13/cobra"

	"github.com/lerenn/devbox/pkg/create"
)

func createCreateCmd() *cobra.Command {
	var force bool

	createCmd := &cobra.Command{
		Use:   "create [repository]",
		Short: "Scaffold box files into a repository",
		Long: `Scaffold box files into a repository: the versioned git_hooks directory,
the pre-commit entry script and the box configuration file. Choices (project
language, which checks to run on commit) are prompted interactively. Without
an argument the repository name is prompted for as well.

Examples:
  devbox create my-project
  devbox create . --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := newDependencies()

			creator := create.NewCreator(create.NewCreatorParams{
				FS:     deps.FS,
				Config: deps.Config,
				Prompt: deps.Prompt,
				Logger: deps.Logger,
			})

			var repo string
			if len(args) > 0 {
				repo = args[0]
			}
			return creator.Create(cmd.Context(), create.CreateParams{
				Repo:  repo,
				Force: force,
			})
		},
	}

	// Add flags
	createCmd.Flags().BoolVarP(&force, "force", "f", false, "Scaffold into an existing directory")

	return createCmd
}
