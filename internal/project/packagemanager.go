package project

import (
	"fmt"
	"strings"

	oerrors "github.com/ijon007/cp-cli/internal/errors"
)

// PackageManager identifies the JavaScript package manager used to install
// and run the generated project.
type PackageManager string

const (
	Npm  PackageManager = "npm"
	Pnpm PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
	Bun  PackageManager = "bun"
)

// AllPackageManagers returns every package manager in prompt order.
func AllPackageManagers() []PackageManager {
	return []PackageManager{Npm, Pnpm, Yarn, Bun}
}

// String implements fmt.Stringer.
func (p PackageManager) String() string {
	return string(p)
}

// IsValid reports whether p is one of the supported package managers.
func (p PackageManager) IsValid() bool {
	switch p {
	case Npm, Pnpm, Yarn, Bun:
		return true
	default:
		return false
	}
}

// InstallCommand returns the command that installs dependencies.
func (p PackageManager) InstallCommand() string {
	return string(p) + " install"
}

// DevCommand returns the command that starts the development server.
func (p PackageManager) DevCommand() string {
	return p.RunCommand("dev")
}

// RunCommand returns the command that runs a package.json script.
func (p PackageManager) RunCommand(script string) string {
	switch p {
	case Pnpm, Yarn:
		return fmt.Sprintf("%s %s", p, script)
	case Bun:
		return "bun run " + script
	default:
		return "npm run " + script
	}
}

// ExecCommand returns the command that executes a package binary.
func (p PackageManager) ExecCommand(command string) string {
	switch p {
	case Pnpm:
		return "pnpm exec " + command
	case Yarn:
		return "yarn " + command
	case Bun:
		return "bun " + command
	default:
		return "npx " + command
	}
}

// ParsePackageManager parses a package manager name (case-insensitive).
func ParsePackageManager(s string) (PackageManager, error) {
	pm := PackageManager(strings.ToLower(strings.TrimSpace(s)))
	if !pm.IsValid() {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown package manager %q", s),
			"packageManager",
			"Valid package managers: "+joinValues(AllPackageManagers()),
		)
	}
	return pm, nil
}
