// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/scriptsync/cli/internal/cmd/config"
	"github.com/scriptsync/cli/internal/cmdtypes"
	"github.com/scriptsync/cli/internal/config"
	"github.com/scriptsync/cli/internal/output"
	"github.com/scriptsync/cli/internal/version"
)

// NewRootCmd creates the root command for the scriptsync CLI.
func NewRootCmd() *cobra.Command {
	var (
		configFlag  string
		verboseFlag bool
	)

	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "scriptsync",
		Short: "Convert python projects to and from a script library",
		Long: `scriptsync converts a standard python project tree into the flattened
script-library layout used by an Ignition gateway, and back.

It provides commands to:
  - Build the script library from a project tree (and reverse)
  - Rebuild automatically while editing (watch mode)
  - Manage the scriptsync configuration file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			output.SetupLogging(verboseFlag)

			info := version.GetInfo()
			output.Debug("scriptsync started", "version", info.Version)

			file, err := config.NewLoader().Load(configFlag)
			if err != nil {
				// Commands that do not need the config file still work.
				output.Debug("config load error", "error", err)
			}

			cfg.File = file
			cfg.ConfigPath = configFlag
			cfg.Verbose = verboseFlag
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"path to config file (env: SCRIPTSYNC_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"increase output verbosity")

	rootCmd.AddCommand(NewBuildCmd(cfg))
	rootCmd.AddCommand(NewWatchCmd(cfg))
	rootCmd.AddCommand(configcmd.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
