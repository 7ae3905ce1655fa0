package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/ijon007/cp-cli/internal/config"
	oerrors "github.com/ijon007/cp-cli/internal/errors"
	"github.com/ijon007/cp-cli/internal/output"
)

// exitError attaches the exit code for err. Detail and validation errors
// render themselves, so main prints them verbatim; anything else is logged
// here with msg as context and marked printed.
func exitError(msg string, err error) error {
	if err == nil {
		return nil
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	if errors.Is(err, context.Canceled) {
		err = fmt.Errorf("%w: %w", oerrors.ErrCancelled, err)
	}

	code := oerrors.ExitCodeFromError(err)
	output.Debug("command failed", "code", code, "kind", oerrors.ExitCodeName(code))

	var detailErr *oerrors.DetailError
	var cfgErrs config.ValidationErrors
	switch {
	case errors.As(err, &detailErr), errors.As(err, &cfgErrs):
		return oerrors.NewExitError(err, code)
	case errors.Is(err, oerrors.ErrCancelled):
		output.Warn(err.Error())
		return &oerrors.ExitError{Code: code, Err: err, Printed: true}
	default:
		output.Error(msg, "error", err)
		return &oerrors.ExitError{Code: code, Err: err, Printed: true}
	}
}
