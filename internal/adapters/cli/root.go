package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "portlogistics",
		Short: "Port logistics - replay cargo movement operations",
		Long: `Port logistics replays cargo movement commands against a fleet of ports
and vessels. Each LOAD moves the whole source inventory aboard a vessel,
sails it to the destination and unloads everything there.

Examples:
  portlogistics run --scenario harbor.yaml
  portlogistics run --scenario harbor.yaml --ops operations.txt --enable-unload
  portlogistics runs list
  portlogistics runs logs harbor-20240301-0a1b2c3d
  portlogistics config show`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: portlogistics.yaml in ., ./configs, /etc/portlogistics)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug output")

	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewRunsCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
