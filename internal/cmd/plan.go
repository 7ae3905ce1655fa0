package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/ijon007/cp-cli/internal/composer"
	oerrors "github.com/ijon007/cp-cli/internal/errors"
	"github.com/ijon007/cp-cli/internal/generator"
	"github.com/ijon007/cp-cli/internal/output"
	"github.com/ijon007/cp-cli/internal/project"
)

// planOptions holds the flags for the plan command.
type planOptions struct {
	project projectFlags
	output  string
}

// planFile is one entry of a plan document.
type planFile struct {
	Path        string `json:"path"`
	Bytes       int    `json:"bytes"`
	Description string `json:"description,omitempty"`
}

// planDocument is the machine-readable form of a plan.
type planDocument struct {
	Name           string     `json:"name"`
	Framework      string     `json:"framework"`
	Database       string     `json:"database"`
	PackageManager string     `json:"packageManager"`
	Features       []string   `json:"features,omitempty"`
	Git            bool       `json:"git"`
	Files          []planFile `json:"files"`
}

// NewPlanCmd creates the plan command.
func NewPlanCmd() *cobra.Command {
	opts := &planOptions{}

	c := &cobra.Command{
		Use:   "plan [name]",
		Short: "Show the files create would write",
		Long: `Compose a project without touching the filesystem and print the result.

plan never prompts: every choice comes from flags, the config file or the
built-in defaults, exactly as 'cp-cli create --yes' would resolve them.

Examples:
  # File tree for the defaults
  cp-cli plan my-app

  # Machine-readable plan
  cp-cli plan my-app --framework tanstack-start --auth -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPlan(c, args, opts)
		},
	}

	opts.project.AddTo(c)
	c.Flags().StringVarP(&opts.output, "output", "o", output.FormatTable.String(),
		"Output format: "+strings.Join(output.ValidFormats(), ", "))

	return c
}

func runPlan(c *cobra.Command, args []string, opts *planOptions) error {
	format, ok := output.ParseOutputFormat(opts.output)
	if !ok {
		return exitError("parsing flags", oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", opts.output), "output",
			"Valid formats: "+strings.Join(output.ValidFormats(), ", ")))
	}

	cwd, err := os.Getwd()
	if err != nil {
		return exitError("resolving working directory", oerrors.WrapIO(err, "getwd"))
	}

	cfg, err := collectConfig(c, args, &opts.project, true, cwd)
	if err != nil {
		return exitError("collecting project configuration", err)
	}

	set := composer.Compose(cfg)
	w := c.OutOrStdout()

	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(newPlanDocument(cfg, set), "", "  ")
		if err != nil {
			return exitError("encoding plan", err)
		}
		fmt.Fprintln(w, string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(newPlanDocument(cfg, set))
		if err != nil {
			return exitError("encoding plan", err)
		}
		fmt.Fprint(w, string(data))
	default:
		target, err := generator.New(generator.Options{WorkDir: cwd}).Target(cfg)
		if err != nil {
			return exitError("resolving project directory", err)
		}
		writePlanTree(w, cfg, set, target)
	}

	return nil
}

func newPlanDocument(cfg project.Config, set composer.Set) planDocument {
	doc := planDocument{
		Name:           cfg.Name,
		Framework:      cfg.Framework.String(),
		Database:       cfg.Database.String(),
		PackageManager: cfg.PackageManager.String(),
		Features:       cfg.Features(),
		Git:            cfg.InitGit,
		Files:          make([]planFile, 0, set.Len()),
	}
	for _, a := range set.All() {
		doc.Files = append(doc.Files, planFile{
			Path:        a.Path,
			Bytes:       len(a.Content),
			Description: a.Description,
		})
	}
	return doc
}

func writePlanTree(w io.Writer, cfg project.Config, set composer.Set, target string) {
	files := make(map[string]string, set.Len())
	for _, a := range set.All() {
		files[a.Path] = a.Description
	}

	fmt.Fprintln(w, output.RenderFileTree(cfg.Name, files))
	fmt.Fprintln(w)

	summary := fmt.Sprintf("%d files for %s + %s", set.Len(), cfg.Framework.Title(), cfg.Database.Title())
	if features := cfg.Features(); len(features) > 0 {
		summary += " with " + strings.Join(features, ", ")
	}
	fmt.Fprintln(w, output.StyleSummary.Render(summary))

	if _, err := os.Stat(target); err == nil {
		fmt.Fprintln(w, output.FormatWarning(fmt.Sprintf("%s already exists; create would refuse to write it", target)))
	}
}
