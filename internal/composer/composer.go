package composer

import (
	"fmt"
	"strings"

	"github.com/ijon007/cp-cli/internal/project"
)

// Placeholder is replaced with the project name in entry-point templates.
const Placeholder = "{{PROJECT_NAME}}"

// Composer produces the artifact set for one framework.
type Composer interface {
	// Framework returns the framework this composer handles.
	Framework() project.Framework

	// Compose returns the files for cfg. It never fails.
	Compose(cfg project.Config) Set
}

// For returns the composer for framework. The framework set is closed, so an
// unknown value is a programming error.
func For(framework project.Framework) Composer {
	switch framework {
	case project.NextJS:
		return nextJS{}
	case project.TanStackStart:
		return tanStackStart{}
	default:
		panic(fmt.Sprintf("composer: unsupported framework %q", framework))
	}
}

// Compose selects the composer for cfg.Framework and runs it.
func Compose(cfg project.Config) Set {
	return For(cfg.Framework).Compose(cfg)
}

// substitute replaces every placeholder in tmpl with the project name.
func substitute(tmpl string, cfg project.Config) string {
	return strings.ReplaceAll(tmpl, Placeholder, cfg.Name)
}

// featureSpec holds the per-framework differences of the shared artifacts.
type featureSpec struct {
	stylesheet      string
	tailwindContent []string
	rsc             bool
	authPackage     string
	publishableKey  string
	gitignore       string
}

// addStylesheet emits the stylesheet, which is Tailwind directives or a reset.
func addStylesheet(s *Set, cfg project.Config, fs featureSpec) {
	body := resetCSS
	if cfg.Styling {
		body = tailwindCSS
	}
	s.add(fs.stylesheet, "global styles", body)
}

// addStyling emits the Tailwind/PostCSS pair and the shadcn/ui scaffolding.
func addStyling(s *Set, cfg project.Config, fs featureSpec) {
	if !cfg.Styling {
		return
	}
	s.add("tailwind.config.js", "Tailwind CSS config", tailwindConfig(fs.tailwindContent))
	s.add("postcss.config.js", "PostCSS config", postcssConfig)

	if cfg.Components {
		s.add("components.json", "shadcn/ui config", componentsJSON(fs))
		s.add("lib/utils.ts", "class name helper", utilsTS)
	}
}

// addDatabase emits the provider-specific files. Providers never share files.
func addDatabase(s *Set, cfg project.Config) {
	switch cfg.Database {
	case project.Convex:
		s.add("convex/schema.ts", "Convex schema", convexSchema)
	case project.NeonDrizzle:
		s.add("db/schema.ts", "Drizzle schema", drizzleSchema)
		s.add("drizzle.config.ts", "drizzle-kit config", drizzleConfig)
	case project.DatabaseNone:
	}
}

// addEnv emits .env.local when any enabled feature needs a secret. Auth
// variables come first, then the database URL.
func addEnv(s *Set, cfg project.Config, fs featureSpec) {
	var b strings.Builder
	if cfg.Auth {
		b.WriteString(fs.publishableKey + "=\n")
		b.WriteString("CLERK_SECRET_KEY=\n")
	}
	if cfg.Database.IsRelational() {
		b.WriteString("DATABASE_URL=\n")
	}
	if b.Len() == 0 {
		return
	}
	s.add(".env.local", "environment variables", b.String())
}

// EnvVars returns the environment variable names the project expects, in the
// order they appear in .env.local.
func EnvVars(cfg project.Config) []string {
	var vars []string
	if cfg.Auth {
		vars = append(vars, specFor(cfg.Framework).publishableKey, "CLERK_SECRET_KEY")
	}
	if cfg.Database.IsRelational() {
		vars = append(vars, "DATABASE_URL")
	}
	return vars
}

func specFor(f project.Framework) featureSpec {
	switch f {
	case project.NextJS:
		return nextJSSpec
	case project.TanStackStart:
		return tanStackSpec
	default:
		panic(fmt.Sprintf("composer: unsupported framework %q", f))
	}
}
