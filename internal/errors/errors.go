// Package errors provides sentinel errors, detail errors and exit codes for cp-cli.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes returned by the cp-cli process.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates an invalid configuration.
	ExitValidationError = 2

	// ExitNotFound indicates a file or directory was not found.
	ExitNotFound = 5

	// ExitAlreadyExists indicates the target directory already exists.
	ExitAlreadyExists = 7

	// ExitIOError indicates writing the project to disk failed.
	ExitIOError = 8

	// ExitCancelled indicates the user aborted the prompts (128 + SIGINT).
	ExitCancelled = 130
)

// DetailError captures structured error information for display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is a file or directory path (optional).
	Location string

	// Field is the configuration field at fault (optional).
	Field string

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
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
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

// NewValidationError creates a validation error with details.
func NewValidationError(message, field, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewExistsError creates the precondition error for an existing target directory.
func NewExistsError(path string) error {
	return &DetailError{
		Type:     "directory already exists",
		Message:  fmt.Sprintf("directory %q already exists", path),
		Location: path,
		Hint:     "Choose a different project name or remove the existing directory.",
		Cause:    ErrExists,
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

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// WrapIO annotates a filesystem failure so that it maps to ExitIOError
// while keeping the original cause in the chain.
func WrapIO(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrIO, err)
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	Code int
	Err  error

	// Printed is set when the command layer already wrote the error to stderr.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
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
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrExists):
		return ExitAlreadyExists
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrCancelled):
		return ExitCancelled
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitAlreadyExists:
		return "Already Exists"
	case ExitIOError:
		return "I/O Error"
	case ExitCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
