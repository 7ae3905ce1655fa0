package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ijon007/cp-cli/internal/config"
	oerrors "github.com/ijon007/cp-cli/internal/errors"
	"github.com/ijon007/cp-cli/internal/pkgmanager"
	"github.com/ijon007/cp-cli/internal/vcs"
)

// isolate runs the test from an empty working directory with a private
// config path and no package manager hints from the environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv(config.EnvConfigPath, filepath.Join(dir, ".cp-cli", "config.yaml"))
	t.Setenv(pkgmanager.UserAgentEnv, "")
	return dir
}

// executeRoot runs the root command with args and returns what it wrote to
// its output streams.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// requireExitCode asserts err is an ExitError with code.
func requireExitCode(t *testing.T, err error, code int) *oerrors.ExitError {
	t.Helper()
	require.Error(t, err)
	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %T: %v", err, err)
	require.Equal(t, code, exitErr.Code, "exit code for %v", err)
	return exitErr
}

// stubVCS swaps the git initializer for the duration of the test.
func stubVCS(t *testing.T, v vcs.Initializer) {
	t.Helper()
	orig := newVCS
	newVCS = func() vcs.Initializer { return v }
	t.Cleanup(func() { newVCS = orig })
}

type fakeVCS struct {
	err   error
	calls []string
}

func (f *fakeVCS) Init(_ context.Context, dir string) error {
	f.calls = append(f.calls, dir)
	return f.err
}
