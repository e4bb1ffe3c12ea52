// Package config provides CLI command implementations for the config
// command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/scriptsync/cli/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(global *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the scriptsync CLI.`,
	}

	c.AddCommand(newInitCmd())
	c.AddCommand(newVetCmd(global))

	return c
}
