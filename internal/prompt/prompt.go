// Package prompt collects a project.Config interactively or from defaults.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	oerrors "github.com/ijon007/cp-cli/internal/errors"
	"github.com/ijon007/cp-cli/internal/output"
	"github.com/ijon007/cp-cli/internal/project"
)

// Pinned marks answers that were fixed by flags and must not be asked.
type Pinned uint8

const (
	PinFramework Pinned = 1 << iota
	PinDatabase
	PinFeatures
	PinGit
)

// Has reports whether p includes field.
func (p Pinned) Has(field Pinned) bool {
	return p&field != 0
}

// Options controls how the configuration is collected.
type Options struct {
	// Name is the project name from the command line, if any.
	Name string

	// PackageManager is an explicit choice from --pm or the config file.
	PackageManager *project.PackageManager

	// Detected is the package manager found by the resolver. It is the
	// preselected answer and the --yes value.
	Detected project.PackageManager

	// Yes skips every prompt.
	Yes bool

	// Defaults holds the starting answers for framework, database, features
	// and git. Name and package manager are ignored.
	Defaults project.Config

	// Pinned lists answers fixed by flags.
	Pinned Pinned
}

// Prompter asks the questions.
type Prompter struct {
	// run executes one form. Swapped in tests.
	run func(*huh.Form) error

	// interactive reports whether stdin is a terminal.
	interactive func() bool
}

// New returns a Prompter that reads from the terminal.
func New() *Prompter {
	return &Prompter{
		run: func(f *huh.Form) error { return f.Run() },
		interactive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

// Collect returns a validated configuration.
func (p *Prompter) Collect(opts Options) (project.Config, error) {
	skip := opts.Yes
	if !skip && !p.interactive() {
		output.Debug("stdin is not a terminal, using defaults")
		skip = true
	}

	cfg := opts.Defaults
	cfg.Name = opts.Name
	cfg.PackageManager = opts.Detected
	if opts.PackageManager != nil {
		cfg.PackageManager = *opts.PackageManager
	}

	if skip {
		if cfg.Name == "" {
			cfg.Name = project.DefaultName
		}
		return cfg, cfg.Validate()
	}

	if err := p.ask(&cfg, opts); err != nil {
		return project.Config{}, err
	}
	return cfg, cfg.Validate()
}

func (p *Prompter) ask(cfg *project.Config, opts Options) error {
	var groups []*huh.Group

	if cfg.Name == "" {
		cfg.Name = project.DefaultName
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Placeholder(project.DefaultName).
				Validate(project.ValidateName).
				Value(&cfg.Name),
		))
	}

	if opts.PackageManager == nil {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[project.PackageManager]().
				Title("Package manager").
				Options(enumOptions(project.AllPackageManagers(), project.PackageManager.String)...).
				Value(&cfg.PackageManager),
		))
	}

	if !opts.Pinned.Has(PinFramework) {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[project.Framework]().
				Title("Select framework").
				Options(enumOptions(project.AllFrameworks(), project.Framework.Title)...).
				Value(&cfg.Framework),
		))
	}

	if !opts.Pinned.Has(PinDatabase) {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[project.Database]().
				Title("Select database").
				Options(enumOptions(project.AllDatabases(), project.Database.Title)...).
				Value(&cfg.Database),
		))
	}

	var features []string
	if !opts.Pinned.Has(PinFeatures) {
		features = selectedFeatures(*cfg)
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select optional features").
				Description("space to select, enter to confirm").
				Options(
					huh.NewOption("Clerk (Auth)", featureAuth),
					huh.NewOption("Tailwind CSS", featureStyling),
					huh.NewOption("shadcn/ui", featureComponents),
				).
				Validate(validateFeatures).
				Value(&features),
		))
	}

	if !opts.Pinned.Has(PinGit) {
		groups = append(groups, huh.NewGroup(
			huh.NewConfirm().
				Title("Initialize git repository?").
				Value(&cfg.InitGit),
		))
	}

	// One form per question: huh v0.8 mis-scrolls groups sharing a viewport.
	for _, g := range groups {
		if err := p.run(huh.NewForm(g)); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return oerrors.Wrap(oerrors.ErrCancelled, "project creation cancelled")
			}
			return fmt.Errorf("prompt failed: %w", err)
		}
	}

	if !opts.Pinned.Has(PinFeatures) {
		applyFeatures(cfg, features)
	}
	return nil
}

const (
	featureAuth       = "auth"
	featureStyling    = "styling"
	featureComponents = "components"
)

func selectedFeatures(cfg project.Config) []string {
	var out []string
	if cfg.Auth {
		out = append(out, featureAuth)
	}
	if cfg.Styling {
		out = append(out, featureStyling)
	}
	if cfg.Components {
		out = append(out, featureComponents)
	}
	return out
}

func applyFeatures(cfg *project.Config, features []string) {
	cfg.Auth, cfg.Styling, cfg.Components = false, false, false
	for _, f := range features {
		switch f {
		case featureAuth:
			cfg.Auth = true
		case featureStyling:
			cfg.Styling = true
		case featureComponents:
			cfg.Components = true
		}
	}
}

func validateFeatures(features []string) error {
	var styling, components bool
	for _, f := range features {
		styling = styling || f == featureStyling
		components = components || f == featureComponents
	}
	if components && !styling {
		return errors.New("shadcn/ui requires Tailwind CSS")
	}
	return nil
}

func enumOptions[T comparable](values []T, label func(T) string) []huh.Option[T] {
	opts := make([]huh.Option[T], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(label(v), v)
	}
	return opts
}
