package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/scriptsync/cli/internal/builder"
	"github.com/scriptsync/cli/internal/cmdtypes"
	"github.com/scriptsync/cli/internal/output"
	"github.com/scriptsync/cli/internal/watcher"
)

// NewWatchCmd creates the watch command.
func NewWatchCmd(global *cmdtypes.GlobalConfig) *cobra.Command {
	var bf BuildFlags

	c := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the script library on source changes",
		Long: `Run a forward build, then keep watching the source tree and rebuild
whenever files change. Changes are debounced so editor save bursts
trigger a single rebuild.

Watch mode is forward-only; run 'scriptsync build --reverse' to restore
the project tree.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := bf.Resolve(c, global)
			if err != nil {
				return err
			}

			if err := runBuild(c.Context(), cfg); err != nil {
				return err
			}

			// Rebuilds never clean: deleting the destination on every
			// save would race the gateway reading it.
			rebuildCfg := cfg
			rebuildCfg.Clean = false

			w, err := watcher.New(cfg.Source,
				func(rel string) bool {
					return strings.HasPrefix(rel, "__pycache__") ||
						strings.Contains(rel, "/__pycache__") ||
						strings.HasPrefix(rel, ".git")
				},
				func() {
					b := builder.New(rebuildCfg)
					if _, err := b.Run(c.Context()); err != nil {
						output.Error("rebuild failed", "error", err)
						return
					}
					output.Info("rebuilt script library", "source", cfg.Source)
				})
			if err != nil {
				return err
			}
			defer w.Close()

			output.Println(output.StyleAction.Render("Watching ") + output.StyleNoun.Render(cfg.Source))
			return w.Watch(c.Context())
		},
	}

	bf.AddTo(c, false)
	return c
}
