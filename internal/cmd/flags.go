package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scriptsync/cli/internal/cmdtypes"
	"github.com/scriptsync/cli/internal/config"
)

// BuildFlags holds the conversion flags shared by build and watch.
type BuildFlags struct {
	Source      string
	Destination string
	Project     string
	Reverse     bool
	Clean       bool
	Modules     []string
	TabSize     int
	CharToTab   bool
}

// AddTo registers the conversion flags on a command. The reverse flag is
// only registered when withReverse is set; watch mode is forward-only.
func (f *BuildFlags) AddTo(c *cobra.Command, withReverse bool) {
	c.Flags().StringVarP(&f.Source, "source", "s", "",
		"source tree root (env: SCRIPTSYNC_SOURCE, default: ./src)")
	c.Flags().StringVarP(&f.Destination, "destination", "d", "",
		"destination tree root (default: the project's script-python path)")
	c.Flags().StringVarP(&f.Project, "project", "p", "",
		"platform project name used in the default destination (env: SCRIPTSYNC_PROJECT)")
	c.Flags().BoolVarP(&f.Clean, "clean", "c", false,
		"delete all contents of the output tree before writing")
	c.Flags().StringSliceVarP(&f.Modules, "source-modules", "l", nil,
		"target module names to alias (default: derived from the tree)")
	c.Flags().IntVarP(&f.TabSize, "tab-size", "n", config.DefaultTabSize,
		"tab width for indentation conversion (env: SCRIPTSYNC_TAB_SIZE)")
	c.Flags().BoolVarP(&f.CharToTab, "char-to-tab", "t", true,
		"convert indentation between spaces and tabs")

	if withReverse {
		c.Flags().BoolVarP(&f.Reverse, "reverse", "r", false,
			"run the reverse pipeline (script library back to project tree)")
	}
}

// Resolve builds and validates the immutable run configuration from the
// flags, the environment, and the config file.
func (f *BuildFlags) Resolve(c *cobra.Command, global *cmdtypes.GlobalConfig) (config.Config, error) {
	cfg := config.Resolve(config.ResolveOptions{
		File:            global.File,
		SourceFlag:      f.Source,
		DestinationFlag: f.Destination,
		ProjectFlag:     f.Project,
		ModulesFlag:     f.Modules,
		TabSizeFlag:     f.TabSize,
		TabSizeSet:      c.Flags().Changed("tab-size"),
		CharToTabFlag:   f.CharToTab,
		CharToTabSet:    c.Flags().Changed("char-to-tab"),
		Reverse:         f.Reverse,
		Clean:           f.Clean,
	})

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
