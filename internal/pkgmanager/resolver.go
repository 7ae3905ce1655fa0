// Package pkgmanager infers which JavaScript package manager a new project
// should use when the user does not pick one explicitly.
package pkgmanager

import (
	"os"
	"os/exec"
	"strings"

	"github.com/ijon007/cp-cli/internal/output"
	"github.com/ijon007/cp-cli/internal/project"
)

// UserAgentEnv is set by package manager wrapper scripts (npx, pnpm dlx,
// yarn dlx, bunx) to identify the calling tool.
const UserAgentEnv = "npm_config_user_agent"

// Source indicates which probe produced a resolution.
type Source string

const (
	SourceFlag      Source = "flag"
	SourceLockfile  Source = "lockfile"
	SourceUserAgent Source = "user-agent"
	SourcePath      Source = "path"
	SourceDefault   Source = "default"
)

// Default is used when no probe matches.
const Default = project.Npm

// lockfiles maps lock file names to the manager that writes them.
var lockfiles = map[string]project.PackageManager{
	"bun.lockb":         project.Bun,
	"pnpm-lock.yaml":    project.Pnpm,
	"yarn.lock":         project.Yarn,
	"package-lock.json": project.Npm,
}

// userAgentOrder and binaryOrder list managers fastest/most specific first.
// npm is absent on purpose: it is the fallback.
var (
	userAgentOrder = []project.PackageManager{project.Bun, project.Pnpm, project.Yarn}
	binaryOrder    = []project.PackageManager{project.Bun, project.Pnpm, project.Yarn}
)

// Resolution is the outcome of Resolve.
type Resolution struct {
	Manager project.PackageManager
	Source  Source
}

// Resolver runs the detection cascade. The zero value is not usable; create
// one with New. Every environment read goes through a field so tests can
// substitute it.
type Resolver struct {
	// Dir is the directory scanned for lock files.
	Dir string

	// ReadDir lists the names of the entries in a directory.
	ReadDir func(dir string) ([]string, error)

	// Getenv reads a process environment variable.
	Getenv func(key string) string

	// LookPath reports whether an executable is on PATH.
	LookPath func(file string) (string, error)
}

// New returns a Resolver that reads the real environment, scanning dir for
// lock files.
func New(dir string) *Resolver {
	return &Resolver{
		Dir:      dir,
		ReadDir:  readDirNames,
		Getenv:   os.Getenv,
		LookPath: exec.LookPath,
	}
}

// probe returns a manager and true when it finds a signal.
type probe struct {
	source Source
	run    func() (project.PackageManager, bool)
}

// Resolve returns the package manager to use. An explicit override wins
// outright; otherwise the probes run in priority order and the first match is
// returned. Resolve never fails.
func (r *Resolver) Resolve(override *project.PackageManager) Resolution {
	probes := []probe{
		{SourceFlag, func() (project.PackageManager, bool) {
			if override == nil || !override.IsValid() {
				return "", false
			}
			return *override, true
		}},
		{SourceLockfile, r.fromLockfile},
		{SourceUserAgent, r.fromUserAgent},
		{SourcePath, r.fromPath},
	}

	for _, p := range probes {
		if pm, ok := p.run(); ok {
			output.Debug("package manager resolved", "manager", pm, "source", p.source)
			return Resolution{Manager: pm, Source: p.source}
		}
	}

	output.Debug("package manager resolved", "manager", Default, "source", SourceDefault)
	return Resolution{Manager: Default, Source: SourceDefault}
}

// fromLockfile returns the manager whose lock file appears first in the
// directory listing.
func (r *Resolver) fromLockfile() (project.PackageManager, bool) {
	if r.ReadDir == nil {
		return "", false
	}
	names, err := r.ReadDir(r.Dir)
	if err != nil {
		output.Debug("lock file scan skipped", "dir", r.Dir, "error", err)
		return "", false
	}
	for _, name := range names {
		if pm, ok := lockfiles[name]; ok {
			return pm, true
		}
	}
	return "", false
}

func (r *Resolver) fromUserAgent() (project.PackageManager, bool) {
	if r.Getenv == nil {
		return "", false
	}
	agent := r.Getenv(UserAgentEnv)
	if agent == "" {
		return "", false
	}
	for _, pm := range userAgentOrder {
		if strings.Contains(agent, string(pm)) {
			return pm, true
		}
	}
	return "", false
}

func (r *Resolver) fromPath() (project.PackageManager, bool) {
	if r.LookPath == nil {
		return "", false
	}
	for _, pm := range binaryOrder {
		if _, err := r.LookPath(string(pm)); err == nil {
			return pm, true
		}
	}
	return "", false
}

func readDirNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
