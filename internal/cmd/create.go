package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ijon007/cp-cli/internal/composer"
	oerrors "github.com/ijon007/cp-cli/internal/errors"
	"github.com/ijon007/cp-cli/internal/generator"
	"github.com/ijon007/cp-cli/internal/output"
	"github.com/ijon007/cp-cli/internal/project"
	"github.com/ijon007/cp-cli/internal/vcs"
)

// createOptions holds the flags for the create command.
type createOptions struct {
	project projectFlags
	yes     bool
	atomic  bool
}

var newVCS = func() vcs.Initializer { return vcs.NewGit() }

// NewCreateCmd creates the create command.
func NewCreateCmd() *cobra.Command {
	opts := &createOptions{}

	c := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new project",
		Long: `Create a new project directory in the current working directory.

Without --yes, cp-cli asks for every choice not already given as a flag.
With --yes (or when stdin is not a terminal) the remaining choices come from
the config file, falling back to built-in defaults.

The package manager is taken from --pm, then the config file, then detected
from lock files, npm_config_user_agent and PATH, falling back to npm.

Examples:
  # Interactive
  cp-cli create my-app

  # Non-interactive with bun
  cp-cli create my-app --pm bun --yes

  # TanStack Start with Neon + Drizzle and Clerk
  cp-cli create shop --framework tanstack-start --database neon-drizzle --auth -y

  # Remove partial output if anything fails
  cp-cli create my-app --atomic`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, opts)
		},
	}

	opts.project.AddTo(c)
	c.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip prompts and use defaults")
	c.Flags().BoolVar(&opts.atomic, "atomic", false, "Stage files and move the project into place only on success")

	return c
}

func runCreate(c *cobra.Command, args []string, opts *createOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return exitError("resolving working directory", oerrors.WrapIO(err, "getwd"))
	}

	cfg, err := collectConfig(c, args, &opts.project, opts.yes, cwd)
	if err != nil {
		return exitError("collecting project configuration", err)
	}

	output.Debug("creating project",
		"name", cfg.Name,
		"framework", cfg.Framework,
		"database", cfg.Database,
		"packageManager", cfg.PackageManager,
		"features", cfg.Features(),
		"atomic", opts.atomic,
	)

	gen := generator.New(generator.Options{
		WorkDir: cwd,
		VCS:     newVCS(),
		Atomic:  opts.atomic,
	})
	result, err := gen.Generate(c.Context(), cfg)
	if err != nil {
		return exitError("creating project", err)
	}

	printCreateSummary(cfg, result)
	return nil
}

func printCreateSummary(cfg project.Config, result *generator.Result) {
	descriptions := make(map[string]string, len(result.Files))
	set := composer.Compose(cfg)
	for _, p := range result.Files {
		a, _ := set.Get(p)
		descriptions[p] = a.Description
	}

	output.Println("")
	output.Println(output.FormatCheckmark("Project created successfully!"))
	output.Println("")
	output.Println(output.RenderFileTree(cfg.Name, descriptions))

	if verboseFlag {
		for _, p := range result.Files {
			output.Println(output.FormatFileLine(p, output.StatusCreated))
		}
	}

	for _, w := range result.Warnings {
		output.Println(output.FormatWarning(w))
	}
	if envs := composer.EnvVars(cfg); len(envs) > 0 {
		output.Println(output.StyleDim.Render(fmt.Sprintf("Fill in %s in .env.local before running the dev server.", strings.Join(envs, ", "))))
	}

	output.Println("")
	output.Println(output.StyleAction.Render("Next steps:"))
	output.Println("  cd " + cfg.Name)
	output.Println("  " + cfg.PackageManager.InstallCommand())
	output.Println("  " + cfg.PackageManager.DevCommand())
	output.Println("")
}
