package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/scriptsync/cli/internal/cmdtypes"
	"github.com/scriptsync/cli/internal/config"
)

func newInitCmd() *cobra.Command {
	var initForce bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new scriptsync configuration file",
		Long: `Create a new scriptsync configuration file with default values.

The configuration file is created at ~/.scriptsync/config.yaml by default.
Use the --config flag to specify a different location.`,
		RunE: func(command *cobra.Command, _ []string) error {
			return runInit(command, initForce)
		},
	}

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config file")

	return initCmd
}

func runInit(command *cobra.Command, force bool) error {
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

	if exists && !force {
		return cmdtypes.NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", expandedPath),
			cmdtypes.ExitGeneralError,
		)
	}

	dir := filepath.Dir(expandedPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	cfg := config.DefaultFileConfig()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	header := []byte("# scriptsync configuration\n# Values are overridden by SCRIPTSYNC_* environment variables and flags.\n\n")
	data = append(header, data...)

	if err := os.WriteFile(expandedPath, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintf(command.OutOrStdout(), "Config file created: %s\n", expandedPath)
	return nil
}
