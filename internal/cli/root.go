// Package cli wires the deploy pipeline to the crossdeploy command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crossdeploy/crossdeploy/internal/logger"
)

var (
	debugBuild bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "crossdeploy",
	Short: "Cross-compile a Cargo project and push the binary to a remote device",
	Long: `crossdeploy builds the current Cargo project for a target architecture
using cross, makes sure the remote host accepts key-based SSH, and copies
the produced binary over with scp.

Connection settings live in cargo_deploy.json next to Cargo.toml. Missing
values are prompted for on the first run and saved back to the file.

Examples:
  crossdeploy
  crossdeploy --debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.EnableDebug()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return Deploy(DeployOptions{Release: !debugBuild})
	},
}

func init() {
	rootCmd.Flags().BoolVar(&debugBuild, "debug", false, "build the debug profile instead of release")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log every subprocess invocation")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
