// Package config provides configuration loading and management.
package config

// Defaults applied when neither flag, environment, nor config file supplies
// a value.
const (
	// DefaultSource is the default project source tree.
	DefaultSource = "./src"

	// DefaultProject is the project name used to build the default
	// destination path.
	DefaultProject = "SampleProject"

	// DefaultTabSize is the default tab width for indentation conversion.
	DefaultTabSize = 4
)

// FileConfig is the on-disk configuration, loaded from
// ~/.scriptsync/config.yaml. Zero values mean "not set"; resolution applies
// flag > env > file > default precedence on top of it.
type FileConfig struct {
	// Source is the project source tree root.
	// Env: SCRIPTSYNC_SOURCE, Default: ./src
	Source string `mapstructure:"source" yaml:"source,omitempty"`

	// Destination is the script-library destination root.
	// Env: SCRIPTSYNC_DESTINATION,
	// Default: ./ignition-data/projects/<project>/ignition/script-python
	Destination string `mapstructure:"destination" yaml:"destination,omitempty"`

	// Project is the platform project name used in the default destination.
	// Env: SCRIPTSYNC_PROJECT
	Project string `mapstructure:"project" yaml:"project,omitempty"`

	// Modules is the explicit Target Module Set. When empty the set is
	// derived from the tree being converted.
	Modules []string `mapstructure:"modules" yaml:"modules,omitempty"`

	// TabSize is the tab width for indentation conversion.
	// Env: SCRIPTSYNC_TAB_SIZE, Default: 4
	TabSize int `mapstructure:"tabSize" yaml:"tabSize,omitempty"`

	// CharToTab enables indentation conversion. Pointer so an explicit
	// false in the file is distinguishable from "not set".
	CharToTab *bool `mapstructure:"charToTab" yaml:"charToTab,omitempty"`

	// Ignore lists gitignore-style patterns excluded from the walk.
	Ignore []string `mapstructure:"ignore" yaml:"ignore,omitempty"`
}

// DefaultFileConfig returns a FileConfig with all default values populated.
// Used by `scriptsync config init` to generate the initial config file.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Source:  DefaultSource,
		Project: DefaultProject,
		TabSize: DefaultTabSize,
		Ignore:  []string{"__pycache__/", ".git/"},
	}
}

// Config is the immutable per-run configuration handed to the core. It is
// constructed once by the command layer from flags, environment, and the
// config file, and never mutated during a run.
type Config struct {
	// Source is the hierarchical project tree root.
	Source string

	// Destination is the flattened script-library root.
	Destination string

	// Project is the platform project name.
	Project string

	// Reverse selects the reverse pipeline (library -> project).
	Reverse bool

	// Clean deletes the output tree before writing. Destructive.
	Clean bool

	// Modules is the explicit Target Module Set; empty means derive it from
	// the tree.
	Modules []string

	// TabSize is the tab width for indentation conversion.
	TabSize int

	// CharToTab enables indentation conversion.
	CharToTab bool

	// Ignore lists gitignore-style patterns excluded from the walk.
	Ignore []string
}
