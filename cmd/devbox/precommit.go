package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lerenn/devbox/pkg/precommit"
)

func createPrecommitCmd() *cobra.Command {
	var jobs int

	precommitCmd := &cobra.Command{
		Use:   "pre-commit",
		Short: "Run the configured pre-commit checks against the staged files",
		Long: `Run the configured pre-commit checks against the staged files.

The staged index is extracted into a temporary snapshot and every check runs
there, so the checks see exactly what the commit would record and never the
working tree. A non-zero exit blocks the commit.

Examples:
  devbox pre-commit
  devbox pre-commit --jobs 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps := newDependencies()

			repoPath, err := deps.Git.RepositoryRoot(".")
			if err != nil {
				return fmt.Errorf("failed to locate repository: %w", err)
			}

			engine := precommit.NewEngine(precommit.NewEngineParams{
				Git:       deps.Git,
				Config:    deps.Config,
				Extractor: deps.Extractor,
				Runner: precommit.NewRunner(precommit.NewRunnerParams{
					Executor:    deps.Executor,
					Concurrency: jobs,
				}),
				Logger:  deps.Logger,
				Verbose: verbose,
			})

			outcome, err := engine.Run(cmd.Context(), repoPath)
			if err != nil {
				return err
			}

			if !outcome.Pass() {
				outcome.Report(os.Stderr)
				os.Exit(1)
			}
			return nil
		},
	}

	// Add flags
	precommitCmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of checks to run in parallel (default: number of CPUs)")

	return precommitCmd
}
