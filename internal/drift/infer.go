package drift

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ijon007/cp-cli/internal/composer"
	oerrors "github.com/ijon007/cp-cli/internal/errors"
	"github.com/ijon007/cp-cli/internal/project"
)

// Infer reconstructs the configuration of a generated project from its
// package.json. The package manager is not recorded in the project and is
// left as the zero value.
func Infer(root string) (project.Config, error) {
	path := filepath.Join(root, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return project.Config{}, oerrors.NewNotFoundError(
				"package.json not found", path,
				"Pass --framework and the feature flags explicitly.")
		}
		return project.Config{}, oerrors.WrapIO(err, "reading package.json")
	}

	m, err := composer.ParseManifest(string(data))
	if err != nil {
		return project.Config{}, oerrors.NewValidationError(
			fmt.Sprintf("cannot parse package.json: %v", err), "package.json", "")
	}

	has := func(dep string) bool {
		_, ok := m.Dependencies[dep]
		return ok
	}

	cfg := project.Config{
		Name:     m.Name,
		Database: project.DatabaseNone,
		InitGit:  true,
	}
	if cfg.Name == "" {
		cfg.Name = filepath.Base(root)
	}

	switch {
	case has("@tanstack/start"):
		cfg.Framework = project.TanStackStart
		cfg.Auth = has("@clerk/clerk-react")
	case has("next"):
		cfg.Framework = project.NextJS
		cfg.Auth = has("@clerk/nextjs")
	default:
		return project.Config{}, oerrors.NewValidationError(
			"cannot determine framework from package.json", "framework",
			"Pass --framework explicitly.")
	}

	switch {
	case has("convex"):
		cfg.Database = project.Convex
	case has("drizzle-orm"):
		cfg.Database = project.NeonDrizzle
	}

	cfg.Styling = has("tailwindcss")
	cfg.Components = cfg.Styling && has("tailwind-merge")

	return cfg, nil
}
