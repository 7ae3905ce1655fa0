package composer

import (
	"encoding/json"

	"github.com/ijon007/cp-cli/internal/project"
)

// latest is the version string used for every dependency.
const latest = "latest"

// Dependency groups shared by both frameworks.
var (
	stylingDeps    = []string{"tailwindcss", "postcss", "autoprefixer"}
	componentsDeps = []string{"class-variance-authority", "clsx", "tailwind-merge", "lucide-react"}
	convexDeps     = []string{"convex"}
	drizzleDeps    = []string{"drizzle-orm", "@neondatabase/serverless", "drizzle-kit"}
	typeScriptDeps = []string{"typescript", "@types/node", "@types/react", "@types/react-dom"}
)

// manifest accumulates the package.json content.
type manifest struct {
	name            string
	scripts         map[string]string
	dependencies    map[string]string
	devDependencies map[string]string
}

func newManifest(name string, scripts map[string]string) *manifest {
	return &manifest{
		name:            name,
		scripts:         scripts,
		dependencies:    make(map[string]string),
		devDependencies: make(map[string]string),
	}
}

func (m *manifest) require(pkgs ...string) {
	for _, p := range pkgs {
		m.dependencies[p] = latest
	}
}

func (m *manifest) requireDev(pkgs ...string) {
	for _, p := range pkgs {
		m.devDependencies[p] = latest
	}
}

// requireFeatures adds the dependencies of every enabled feature.
func (m *manifest) requireFeatures(cfg project.Config, authPackage string) {
	if cfg.Styling {
		m.require(stylingDeps...)
		if cfg.Components {
			m.require(componentsDeps...)
		}
	}
	if cfg.Auth {
		m.require(authPackage)
	}
	switch cfg.Database {
	case project.Convex:
		m.require(convexDeps...)
	case project.NeonDrizzle:
		m.require(drizzleDeps...)
	case project.DatabaseNone:
	}
}

// render serializes the manifest with sorted keys and two-space indentation.
func (m *manifest) render() string {
	return marshalJSON(map[string]any{
		"name":            m.name,
		"version":         "0.1.0",
		"private":         true,
		"scripts":         m.scripts,
		"dependencies":    m.dependencies,
		"devDependencies": m.devDependencies,
	})
}

// Manifest is the decoded subset of package.json used by tests and drift checks.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// ParseManifest decodes a package.json body.
func ParseManifest(content string) (Manifest, error) {
	var m Manifest
	err := json.Unmarshal([]byte(content), &m)
	return m, err
}

// marshalJSON renders v the way package managers write their own files.
// Map keys come out sorted. There is no trailing newline.
func marshalJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// Only maps, slices, strings and bools reach here.
		panic("composer: " + err.Error())
	}
	return string(data)
}

// tsconfig returns tsconfig.json. Next.js adds its compiler plugin and
// generated type paths.
func tsconfig(framework project.Framework) string {
	options := map[string]any{
		"target":            "ES2017",
		"lib":               []string{"dom", "dom.iterable", "esnext"},
		"allowJs":           true,
		"skipLibCheck":      true,
		"strict":            true,
		"noEmit":            true,
		"esModuleInterop":   true,
		"module":            "esnext",
		"moduleResolution":  "bundler",
		"resolveJsonModule": true,
		"isolatedModules":   true,
		"jsx":               "preserve",
		"incremental":       true,
		"paths": map[string][]string{
			"@/*": {"./*"},
		},
	}
	include := []string{"**/*.ts", "**/*.tsx"}

	if framework == project.NextJS {
		options["plugins"] = []map[string]string{{"name": "next"}}
		include = []string{"next-env.d.ts", "**/*.ts", "**/*.tsx", ".next/types/**/*.ts"}
	}

	return marshalJSON(map[string]any{
		"compilerOptions": options,
		"include":         include,
		"exclude":         []string{"node_modules"},
	})
}
