// Package vcs initializes version control in a generated project.
package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ijon007/cp-cli/internal/output"
)

// Initializer sets up version control in a directory.
type Initializer interface {
	Init(ctx context.Context, dir string) error
}

// Git runs `git init`.
type Git struct {
	// Binary is the git executable. Defaults to "git".
	Binary string

	// commandFunc builds the command. Swapped in tests.
	commandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewGit returns a Git initializer using the git binary on PATH.
func NewGit() *Git {
	return &Git{Binary: "git", commandFunc: exec.CommandContext}
}

// Init runs `git init` in dir. The error carries git's stderr when available.
func (g *Git) Init(ctx context.Context, dir string) error {
	bin := g.Binary
	if bin == "" {
		bin = "git"
	}
	commandFunc := g.commandFunc
	if commandFunc == nil {
		commandFunc = exec.CommandContext
	}

	cmd := commandFunc(ctx, bin, "init")
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output.Debug("running git init", "dir", dir)
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("git not found on PATH: %w", err)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("git init failed: %s: %w", msg, err)
		}
		return fmt.Errorf("git init failed: %w", err)
	}
	return nil
}
