package config

import "path/filepath"

// DefaultDestination returns the platform-conventional script-library path
// for a project name.
func DefaultDestination(project string) string {
	return filepath.Join(".", "ignition-data", "projects", project, "ignition", "script-python")
}

// ResolveOptions carries the raw flag values plus the loaded file config
// into resolution. The *Set fields report whether the user passed the flag
// explicitly, so a flag default never shadows a file value.
type ResolveOptions struct {
	// File is the loaded config file (env values already merged by viper).
	// May be nil.
	File *FileConfig

	SourceFlag      string
	DestinationFlag string
	ProjectFlag     string
	ModulesFlag     []string

	TabSizeFlag int
	TabSizeSet  bool

	CharToTabFlag bool
	CharToTabSet  bool

	Reverse bool
	Clean   bool
}

// Resolve builds the immutable run Config using precedence:
// flag > environment > config file > built-in default.
func Resolve(opts ResolveOptions) Config {
	file := opts.File
	if file == nil {
		file = &FileConfig{}
	}

	cfg := Config{
		Reverse: opts.Reverse,
		Clean:   opts.Clean,
	}

	cfg.Project = firstNonEmpty(opts.ProjectFlag, file.Project, DefaultProject)
	cfg.Source = firstNonEmpty(opts.SourceFlag, file.Source, DefaultSource)
	cfg.Destination = firstNonEmpty(opts.DestinationFlag, file.Destination, DefaultDestination(cfg.Project))

	switch {
	case len(opts.ModulesFlag) > 0:
		cfg.Modules = opts.ModulesFlag
	default:
		cfg.Modules = file.Modules
	}

	switch {
	case opts.TabSizeSet:
		cfg.TabSize = opts.TabSizeFlag
	case file.TabSize != 0:
		cfg.TabSize = file.TabSize
	default:
		cfg.TabSize = DefaultTabSize
	}

	switch {
	case opts.CharToTabSet:
		cfg.CharToTab = opts.CharToTabFlag
	case file.CharToTab != nil:
		cfg.CharToTab = *file.CharToTab
	default:
		cfg.CharToTab = true
	}

	cfg.Ignore = file.Ignore

	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
