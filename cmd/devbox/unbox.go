package main

import (
	"github.com/spf13/cobra"

	"github.com/lerenn/devbox/pkg/unbox"
)

func createUnboxCmd() *cobra.Command {
	var noDeps bool
	var venvBin string
	var venv string

	unboxCmd := &cobra.Command{
		Use:   "unbox <repository> [dest]",
		Short: "Clone and set up a developer repository",
		Long: `Clone a repository and set it up for development: install the versioned
git hooks, create or share a virtualenv, run the configured setup commands
and unbox declared dependency repositories alongside it.

The repository may be a git URL, an owner/repo GitHub shorthand, or the path
of an existing checkout.

Examples:
  devbox unbox lerenn/example
  devbox unbox git@github.com:lerenn/example.git my-example
  devbox unbox ./example --no-deps`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := newDependencies()

			var dest string
			if len(args) > 1 {
				dest = args[1]
			}

			unboxer := unbox.NewUnboxer(unbox.NewUnboxerParams{
				FS:       deps.FS,
				Git:      deps.Git,
				Config:   deps.Config,
				Executor: deps.Executor,
				Resolver: deps.Resolver,
				Logger:   deps.Logger,
			})

			return unboxer.Unbox(cmd.Context(), unbox.UnboxParams{
				RepoRef: args[0],
				Dest:    dest,
				NoDeps:  noDeps,
				VenvBin: venvBin,
				Venv:    venv,
			})
		},
	}

	// Add flags
	unboxCmd.Flags().BoolVar(&noDeps, "no-deps", false, "Do not clone and set up the dependencies")
	unboxCmd.Flags().StringVar(&venvBin, "venv-bin", unbox.DefaultVenvBin, "Virtualenv binary")
	unboxCmd.Flags().StringVar(&venv, "venv", "", "Path to an existing virtualenv to symlink instead of creating one")

	return unboxCmd
}
