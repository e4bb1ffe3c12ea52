package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scriptsync/cli/internal/cmdtypes"
	"github.com/scriptsync/cli/internal/config"
)

func newVetCmd(global *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the scriptsync configuration file",
		Long: `Validate the scriptsync configuration file.

The command validates the configuration file at ~/.scriptsync/config.yaml
by default. Use the --config flag to specify a different location.`,
		RunE: func(command *cobra.Command, _ []string) error {
			return runVet(command, global)
		},
	}
}

func runVet(command *cobra.Command, global *cmdtypes.GlobalConfig) error {
	configFile := command.Flag("config").Value.String()
	if configFile == "" {
		var err error
		configFile, err = config.GetConfigFile()
		if err != nil {
			return fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := config.ExpandPath(configFile)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if !exists {
		return cmdtypes.NewExitError(
			fmt.Errorf("config file not found: %s", expandedPath),
			cmdtypes.ExitNotFound,
		)
	}

	file, err := config.NewLoader().Load(expandedPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Vet the file on its own terms: resolve with no flags so file values
	// land in the run config, then run the standard validation.
	cfg := config.Resolve(config.ResolveOptions{File: file})
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintln(command.ErrOrStderr(), "Error: config validation failed")
		fmt.Fprintf(command.ErrOrStderr(), "  File: %s\n", expandedPath)
		return cmdtypes.NewExitError(err, cmdtypes.ExitConfigError)
	}

	fmt.Fprintf(command.OutOrStdout(), "Config file is valid: %s\n", expandedPath)
	return nil
}
