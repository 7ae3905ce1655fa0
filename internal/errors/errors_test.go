//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{ErrValidation, ErrExists, ErrIO, ErrNotFound, ErrCancelled, ErrDrift}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotEqual(t, a, b)
			}
		}
	}
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid value",
		Location: "/tmp/config.yaml",
		Field:    "framework",
		Hint:     "Use nextjs or tanstack-start",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: /tmp/config.yaml")
	assert.Contains(t, output, "Field: framework")
	assert.Contains(t, output, "invalid value")
	assert.Contains(t, output, "Hint: Use nextjs or tanstack-start")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewExistsError(t *testing.T) {
	err := NewExistsError("/work/demo")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExists))
	assert.Contains(t, err.Error(), "already exists")

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "/work/demo", detail.Location)
}

func TestWrapIO_KeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapIO(cause, "writing package.json")

	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "writing package.json")
	assert.Contains(t, err.Error(), "disk full")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"validation error", ErrValidation, ExitValidationError},
		{"wrapped validation error", Wrap(ErrValidation, "bad framework"), ExitValidationError},
		{"exists error", NewExistsError("demo"), ExitAlreadyExists},
		{"io error", WrapIO(errors.New("boom"), "write"), ExitIOError},
		{"not found error", ErrNotFound, ExitNotFound},
		{"cancelled", fmt.Errorf("prompt: %w", ErrCancelled), ExitCancelled},
		{"explicit exit error", NewExitError(errors.New("x"), 42), 42},
		{"unknown error returns general error", errors.New("unknown error"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Already Exists", ExitCodeName(ExitAlreadyExists))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
