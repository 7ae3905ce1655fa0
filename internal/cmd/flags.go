package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ijon007/cp-cli/internal/pkgmanager"
	"github.com/ijon007/cp-cli/internal/project"
	"github.com/ijon007/cp-cli/internal/prompt"
)

// projectFlags holds the flags that pin project choices. Any flag the user
// sets is taken as final and its question is not asked.
type projectFlags struct {
	pm         string
	framework  string
	database   string
	auth       bool
	styling    bool
	components bool
	noGit      bool
}

// AddTo registers the project flags on cmd.
func (f *projectFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.pm, "pm", "", "Package manager: npm, pnpm, yarn, bun")
	f.addChoiceFlags(cmd)
	cmd.Flags().BoolVar(&f.noGit, "no-git", false, "Skip git repository initialization")
}

// addChoiceFlags registers only the flags that change the composed files.
func (f *projectFlags) addChoiceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.framework, "framework", "", "Framework: nextjs, tanstack-start")
	cmd.Flags().StringVar(&f.database, "database", "", "Database: none, convex, neon-drizzle")
	cmd.Flags().BoolVar(&f.auth, "auth", false, "Add Clerk authentication")
	cmd.Flags().BoolVar(&f.styling, "styling", false, "Add Tailwind CSS")
	cmd.Flags().BoolVar(&f.components, "components", false, "Add shadcn/ui (implies --styling)")
}

// packageManager returns the --pm value, or nil when the flag is unset.
func (f *projectFlags) packageManager() (*project.PackageManager, error) {
	if f.pm == "" {
		return nil, nil
	}
	pm, err := project.ParsePackageManager(f.pm)
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

// pinned reports which questions the flags on cmd have already answered.
func (f *projectFlags) pinned(cmd *cobra.Command) prompt.Pinned {
	var p prompt.Pinned
	changed := cmd.Flags().Changed
	if changed("framework") {
		p |= prompt.PinFramework
	}
	if changed("database") {
		p |= prompt.PinDatabase
	}
	if changed("auth") || changed("styling") || changed("components") {
		p |= prompt.PinFeatures
	}
	if changed("no-git") {
		p |= prompt.PinGit
	}
	return p
}

// apply overlays the flags set on cmd onto base.
func (f *projectFlags) apply(cmd *cobra.Command, base project.Config) (project.Config, error) {
	out := base
	changed := cmd.Flags().Changed

	if changed("framework") {
		fw, err := project.ParseFramework(f.framework)
		if err != nil {
			return base, err
		}
		out.Framework = fw
	}
	if changed("database") {
		db, err := project.ParseDatabase(f.database)
		if err != nil {
			return base, err
		}
		out.Database = db
	}
	if changed("auth") {
		out.Auth = f.auth
	}
	if changed("styling") {
		out.Styling = f.styling
	}
	if changed("components") {
		out.Components = f.components
		if f.components && !changed("styling") {
			out.Styling = true
		}
	}
	if changed("no-git") {
		out.InitGit = !f.noGit
	}

	return out, nil
}

// collectConfig builds the project configuration for cmd: built-in defaults,
// then the user defaults file, then flags, then prompts for whatever is left.
// dir is scanned for lock files when the package manager is not pinned.
func collectConfig(cmd *cobra.Command, args []string, f *projectFlags, yes bool, dir string) (project.Config, error) {
	var name string
	if len(args) > 0 {
		name = args[0]
	}

	flagPM, err := f.packageManager()
	if err != nil {
		return project.Config{}, err
	}

	userCfg := GetUserConfig()
	override := flagPM
	if override == nil {
		override, err = userCfg.PackageManagerOverride()
		if err != nil {
			return project.Config{}, err
		}
	}

	resolution := pkgmanager.New(dir).Resolve(override)

	defaults, err := userCfg.Apply(project.DefaultConfig(name, resolution.Manager))
	if err != nil {
		return project.Config{}, err
	}
	defaults, err = f.apply(cmd, defaults)
	if err != nil {
		return project.Config{}, err
	}

	return newPrompter().Collect(prompt.Options{
		Name:           name,
		PackageManager: flagPM,
		Detected:       resolution.Manager,
		Yes:            yes,
		Defaults:       defaults,
		Pinned:         f.pinned(cmd),
	})
}

// collector gathers a project configuration; prompt.Prompter in production.
type collector interface {
	Collect(opts prompt.Options) (project.Config, error)
}

var newPrompter = func() collector { return prompt.New() }
