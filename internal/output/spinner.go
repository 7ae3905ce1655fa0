package output

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// isTTY is swapped in tests.
var isTTY = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// IsTTY reports whether stderr is attached to a terminal.
func IsTTY() bool {
	return isTTY()
}

// runSpinner shows title until wait returns. Swapped in tests.
var runSpinner = func(title string, wait func()) error {
	return spinner.New().
		Title(title).
		Action(wait).
		Run()
}

// RunWithSpinner executes an action with a spinner.
// Without a terminal the action runs directly. Returns the action's error if any.
//
// Cancelling ctx stops the spinner but never abandons the action: the call
// returns only once the action has finished, and reports ctx.Err() if the
// action itself succeeded.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() {
		return action()
	}

	errCh := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		errCh <- action()
		close(done)
	}()

	spinnerErr := runSpinner(cfg.title, func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
	})

	err := <-errCh
	switch {
	case err != nil:
		return err
	case spinnerErr != nil:
		return fmt.Errorf("spinner error: %w", spinnerErr)
	default:
		return ctx.Err()
	}
}
