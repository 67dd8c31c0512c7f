// Package main provides the command-line interface for the devbox application.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/lerenn/devbox/pkg/config"
	"github.com/lerenn/devbox/pkg/dependencies"
	"github.com/lerenn/devbox/pkg/logger"
)

var (
	quiet      bool
	verbose    bool
	configPath string
)

// newDependencies builds the dependency container honoring the global flags.
func newDependencies() *dependencies.Dependencies {
	deps := dependencies.New()
	if !quiet {
		deps.WithLogger(logger.NewDefaultLogger())
	}
	if configPath != "" {
		deps.WithConfig(config.NewManagerWithFile(deps.FS, configPath))
	}
	return deps
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "devbox",
		Short: "Devbox - repository scaffolding and isolated pre-commit hooks",
		Long: `A CLI tool that scaffolds repositories with pre-commit hook configuration ` +
			`and automates cloning and setting up development environments.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file (default: <repository>/"+config.ConfFile+")")

	// Add subcommands
	rootCmd.AddCommand(
		createCreateCmd(),
		createUnboxCmd(),
		createPrecommitCmd(),
		createVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
