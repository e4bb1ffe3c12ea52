package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scriptsync/cli/internal/builder"
	"github.com/scriptsync/cli/internal/cmdtypes"
	"github.com/scriptsync/cli/internal/config"
	"github.com/scriptsync/cli/internal/output"
)

// NewBuildCmd creates the build command.
func NewBuildCmd(global *cmdtypes.GlobalConfig) *cobra.Command {
	var bf BuildFlags

	c := &cobra.Command{
		Use:   "build",
		Short: "Convert the project tree to a script library",
		Long: `Convert a standard python project tree into the flattened script-library
layout: each module becomes a dot-named folder holding code.py and a
resource.json record, target-module imports become local aliases, and
space indentation becomes tabs.

With --reverse the exact inverse runs: the script library is converted
back into the project tree.

Examples:
  # Build the default ./src tree into the project's script library
  scriptsync build

  # Build a specific tree, cleaning stale output first
  scriptsync build -s ./myproject/src -d ./out -c

  # Restore the project tree from the script library
  scriptsync build --reverse

  # Alias only the listed modules, with 2-space indentation
  scriptsync build -l plant -l shared -n 2`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := bf.Resolve(c, global)
			if err != nil {
				return err
			}
			return runBuild(c.Context(), cfg)
		},
	}

	bf.AddTo(c, true)
	return c
}

// runBuild executes one conversion pass and prints the build report.
func runBuild(ctx context.Context, cfg config.Config) error {
	title := "Building script library..."
	outRoot := cfg.Destination
	if cfg.Reverse {
		title = "Restoring project tree..."
		outRoot = cfg.Source
	}

	b := builder.New(cfg)

	var result *builder.Result
	err := output.RunWithSpinner(ctx, func() error {
		r, err := b.Run(ctx)
		result = r
		return err
	}, output.WithTitle(title))
	if err != nil {
		return err
	}

	log := output.RunLogger(cfg.Project)
	log.Info("conversion finished",
		"direction", result.Direction,
		"files", len(result.Files),
		"modules", len(result.Modules),
	)

	output.Println(output.StyleSummary.Render(
		fmt.Sprintf("Wrote %d files to %s\n", len(result.Files), outRoot)))
	output.Print(output.RenderFileTree(outRoot, result.Files))

	return nil
}
