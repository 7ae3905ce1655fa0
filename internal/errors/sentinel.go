package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates an invalid configuration or flag value.
	ErrValidation = errors.New("validation error")

	// ErrExists indicates the target project directory already exists.
	ErrExists = errors.New("already exists")

	// ErrIO indicates a directory creation or file write failure.
	ErrIO = errors.New("i/o error")

	// ErrNotFound indicates a file or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrCancelled indicates the user aborted an interactive prompt.
	ErrCancelled = errors.New("cancelled")

	// ErrDrift indicates a project on disk no longer matches its configuration.
	ErrDrift = errors.New("drift detected")
)
