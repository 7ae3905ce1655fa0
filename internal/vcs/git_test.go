package vcs

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCommand returns a commandFunc that runs sh -c script instead of git.
func fakeCommand(t *testing.T, script string, gotArgs *[]string) func(context.Context, string, ...string) *exec.Cmd {
	t.Helper()
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		*gotArgs = append([]string{name}, args...)
		return exec.CommandContext(ctx, "sh", "-c", script)
	}
}

func TestGitInit_Success(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	dir := t.TempDir()

	var args []string
	g := &Git{Binary: "git", commandFunc: fakeCommand(t, "touch marker", &args)}
	require.NoError(t, g.Init(context.Background(), dir))

	assert.Equal(t, []string{"git", "init"}, args)
	_, err := os.Stat(filepath.Join(dir, "marker"))
	assert.NoError(t, err, "command must run inside the target directory")
}

func TestGitInit_FailureIncludesStderr(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	var args []string
	g := &Git{commandFunc: fakeCommand(t, "echo 'fatal: nope' >&2; exit 128", &args)}
	err := g.Init(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fatal: nope")
}

func TestGitInit_MissingBinary(t *testing.T) {
	g := &Git{Binary: "cp-cli-no-such-git-binary"}
	err := g.Init(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}
