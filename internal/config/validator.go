package config

import (
	"fmt"
	"strings"

	oerrors "github.com/scriptsync/cli/internal/errors"
)

// Validate checks a resolved run Config. It returns a configuration error
// describing the first invalid value.
func Validate(cfg Config) error {
	if cfg.Source == "" {
		return oerrors.NewConfigError("source path must not be empty", "",
			"Pass -s/--source or set source in the config file.")
	}
	if cfg.Destination == "" {
		return oerrors.NewConfigError("destination path must not be empty", "",
			"Pass -d/--destination or set destination in the config file.")
	}
	if cfg.TabSize < 1 {
		return oerrors.NewConfigError(
			fmt.Sprintf("tab size must be a positive integer, got %d", cfg.TabSize), "",
			"Pass -n/--tab-size with a value of 1 or greater.")
	}

	for _, m := range cfg.Modules {
		if m == "" {
			return oerrors.NewConfigError("module names must not be empty", "", "")
		}
		if strings.ContainsAny(m, "./\\ ") {
			return oerrors.NewConfigError(
				fmt.Sprintf("module name %q must be a plain top-level name", m), "",
				"Target modules are matched on the first dotted segment; pass root names only.")
		}
	}

	return nil
}
