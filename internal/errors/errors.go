// Package errors provides sentinel errors for the scriptsync CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrConfig indicates an invalid run configuration (bad tab size,
	// missing source root, malformed module name).
	ErrConfig = errors.New("configuration error")

	// ErrInvalidPath indicates a module path that cannot be mapped between
	// the hierarchical and flattened representations.
	ErrInvalidPath = errors.New("invalid path")

	// ErrIO indicates a file read, write, or delete failure.
	ErrIO = errors.New("i/o error")

	// ErrNotFound indicates a file, directory, or config file was not found.
	ErrNotFound = errors.New("not found")
)

// Exit codes returned by the CLI process.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitConfigError indicates the run configuration was invalid.
	ExitConfigError = 2

	// ExitInvalidPath indicates a module path could not be mapped.
	ExitInvalidPath = 3

	// ExitIOError indicates a file operation failed.
	ExitIOError = 4

	// ExitNotFound indicates a required file or directory was missing.
	ExitNotFound = 5
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the offending file or directory path (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a configuration error with details.
func NewConfigError(message, location, hint string) error {
	return &DetailError{
		Type:     "invalid configuration",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrConfig,
	}
}

// NewInvalidPathError creates a path mapping error with details.
func NewInvalidPathError(message, location string) error {
	return &DetailError{
		Type:     "invalid path",
		Message:  message,
		Location: location,
		Cause:    ErrInvalidPath,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed records whether the command layer already printed the error,
	// so main does not print it twice.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidPath):
		return ExitInvalidPath
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// WrapIO wraps an underlying error with ErrIO and a message.
func WrapIO(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrIO, err)
}
