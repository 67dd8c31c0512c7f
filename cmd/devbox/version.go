package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lerenn/devbox/pkg/version"
)

func createVersionCmd() *cobra.Command {
	var fromGit bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the devbox version",
		Long: `Print the devbox version.

With --from-git the version is derived from the tags of the current
repository instead of the compiled-in value, matching what a package built
from this checkout would carry.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if fromGit {
				deps := newDependencies()
				fmt.Println(version.Resolve(deps.Git, "."))
				return nil
			}
			fmt.Println(version.Fallback)
			return nil
		},
	}

	// Add flags
	versionCmd.Flags().BoolVar(&fromGit, "from-git", false, "Derive the version from the current repository's git tags")

	return versionCmd
}
