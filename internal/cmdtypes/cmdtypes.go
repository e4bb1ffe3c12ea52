// Package cmdtypes provides shared types for the cmd package and its
// sub-packages. It is separate from internal/cmd to avoid import cycles
// between internal/cmd and its sub-packages (internal/cmd/config).
package cmdtypes

import (
	"github.com/scriptsync/cli/internal/config"
	oerrors "github.com/scriptsync/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during
// PersistentPreRunE. It is populated once at startup and passed explicitly
// into every sub-command constructor.
type GlobalConfig struct {
	// File is the loaded config file; nil when loading failed.
	File *config.FileConfig

	// ConfigPath is the resolved --config path ("" for the default).
	ConfigPath string

	// Verbose mirrors the --verbose flag.
	Verbose bool
}

// Exit codes — aliases to internal/errors constants.
const (
	ExitSuccess      = oerrors.ExitSuccess
	ExitGeneralError = oerrors.ExitGeneralError
	ExitConfigError  = oerrors.ExitConfigError
	ExitInvalidPath  = oerrors.ExitInvalidPath
	ExitIOError      = oerrors.ExitIOError
	ExitNotFound     = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError, so command code
// uses one error type across all packages.
type ExitError = oerrors.ExitError

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return oerrors.NewExitError(err, code)
}
