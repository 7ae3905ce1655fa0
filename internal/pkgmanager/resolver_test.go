package pkgmanager

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijon007/cp-cli/internal/project"
)

// fakeEnv builds a Resolver with no real environment access.
func fakeEnv(files []string, agent string, binaries ...string) *Resolver {
	onPath := make(map[string]bool)
	for _, b := range binaries {
		onPath[b] = true
	}
	return &Resolver{
		Dir: "/project",
		ReadDir: func(string) ([]string, error) {
			return files, nil
		},
		Getenv: func(key string) string {
			if key == UserAgentEnv {
				return agent
			}
			return ""
		},
		LookPath: func(file string) (string, error) {
			if onPath[file] {
				return "/usr/bin/" + file, nil
			}
			return "", errors.New("not found")
		},
	}
}

func pmPtr(pm project.PackageManager) *project.PackageManager {
	return &pm
}

func TestResolve_Cascade(t *testing.T) {
	tests := []struct {
		name       string
		resolver   *Resolver
		override   *project.PackageManager
		wantPM     project.PackageManager
		wantSource Source
	}{
		{
			name:       "override beats every signal",
			resolver:   fakeEnv([]string{"bun.lockb"}, "bun/1.1.0", "bun"),
			override:   pmPtr(project.Yarn),
			wantPM:     project.Yarn,
			wantSource: SourceFlag,
		},
		{
			name:       "invalid override is ignored",
			resolver:   fakeEnv([]string{"yarn.lock"}, ""),
			override:   pmPtr("deno"),
			wantPM:     project.Yarn,
			wantSource: SourceLockfile,
		},
		{
			name:       "lockfile beats user agent and path",
			resolver:   fakeEnv([]string{"README.md", "pnpm-lock.yaml"}, "bun/1.1.0", "bun"),
			wantPM:     project.Pnpm,
			wantSource: SourceLockfile,
		},
		{
			name:       "package-lock selects npm",
			resolver:   fakeEnv([]string{"package-lock.json"}, "yarn/4.0.0", "yarn"),
			wantPM:     project.Npm,
			wantSource: SourceLockfile,
		},
		{
			name:       "first lockfile in listing wins",
			resolver:   fakeEnv([]string{"yarn.lock", "bun.lockb"}, ""),
			wantPM:     project.Yarn,
			wantSource: SourceLockfile,
		},
		{
			name:       "user agent bun",
			resolver:   fakeEnv(nil, "bun/1.1.0 npm/? node/v20", "pnpm"),
			wantPM:     project.Bun,
			wantSource: SourceUserAgent,
		},
		{
			name:       "user agent pnpm",
			resolver:   fakeEnv(nil, "pnpm/9.0.0 npm/? node/v20"),
			wantPM:     project.Pnpm,
			wantSource: SourceUserAgent,
		},
		{
			name:       "user agent check is case-sensitive",
			resolver:   fakeEnv(nil, "PNPM/9.0.0", "yarn"),
			wantPM:     project.Yarn,
			wantSource: SourcePath,
		},
		{
			name:       "npm user agent falls through",
			resolver:   fakeEnv(nil, "npm/10.0.0 node/v20"),
			wantPM:     project.Npm,
			wantSource: SourceDefault,
		},
		{
			name:       "path prefers bun over pnpm",
			resolver:   fakeEnv(nil, "", "pnpm", "bun", "yarn"),
			wantPM:     project.Bun,
			wantSource: SourcePath,
		},
		{
			name:       "path prefers pnpm over yarn",
			resolver:   fakeEnv(nil, "", "yarn", "pnpm"),
			wantPM:     project.Pnpm,
			wantSource: SourcePath,
		},
		{
			name:       "nothing matches",
			resolver:   fakeEnv(nil, ""),
			wantPM:     project.Npm,
			wantSource: SourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.resolver.Resolve(tt.override)
			assert.Equal(t, tt.wantPM, got.Manager)
			assert.Equal(t, tt.wantSource, got.Source)
		})
	}
}

func TestResolve_ReadDirErrorFallsThrough(t *testing.T) {
	r := fakeEnv(nil, "yarn/4.0.0")
	r.ReadDir = func(string) ([]string, error) {
		return nil, errors.New("permission denied")
	}

	got := r.Resolve(nil)
	assert.Equal(t, project.Yarn, got.Manager)
	assert.Equal(t, SourceUserAgent, got.Source)
}

func TestResolve_NilProbesFallToDefault(t *testing.T) {
	r := &Resolver{}
	got := r.Resolve(nil)
	assert.Equal(t, Default, got.Manager)
	assert.Equal(t, SourceDefault, got.Source)
}

func TestNew_ScansRealDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pnpm-lock.yaml"), nil, 0o644))

	r := New(dir)
	got := r.Resolve(nil)
	assert.Equal(t, project.Pnpm, got.Manager)
	assert.Equal(t, SourceLockfile, got.Source)
}
