package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ijon007/cp-cli/internal/drift"
	oerrors "github.com/ijon007/cp-cli/internal/errors"
	"github.com/ijon007/cp-cli/internal/output"
)

// diffOptions holds the flags for the diff command.
type diffOptions struct {
	project projectFlags
	name    string
	noColor bool
}

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	opts := &diffOptions{}

	c := &cobra.Command{
		Use:   "diff [dir]",
		Short: "Compare a project with freshly generated files",
		Long: `Compare an existing project directory with the files cp-cli would generate
for it today.

The configuration is read back from the project's package.json. Flags
override what was inferred.

Reported per file:
  - missing    generated file absent from the project
  - modified   file content differs (JSON files get a structural diff)
  - extra      file cp-cli only generates for other choices

Exit codes:
  0 - No differences found
  1 - Differences exist or an error occurred
  2 - Validation error
  5 - Project directory not found`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runDiff(c, dir, opts)
		},
	}

	opts.project.addChoiceFlags(c)
	c.Flags().StringVar(&opts.name, "name", "", "Project name used for substitution (default: from package.json)")
	c.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return c
}

func runDiff(c *cobra.Command, dir string, opts *diffOptions) error {
	root, err := filepath.Abs(dir)
	if err != nil {
		return exitError("resolving project directory", oerrors.WrapIO(err, "resolving path"))
	}

	cfg, err := drift.Infer(root)
	if err != nil {
		return exitError("reading project configuration", err)
	}
	cfg, err = opts.project.apply(c, cfg)
	if err != nil {
		return exitError("parsing flags", err)
	}
	if opts.name != "" {
		cfg.Name = opts.name
	}

	output.Debug("comparing project",
		"root", root,
		"name", cfg.Name,
		"framework", cfg.Framework,
		"database", cfg.Database,
		"features", cfg.Features(),
	)

	report, err := drift.Compare(root, cfg, drift.Options{Color: !opts.noColor && output.IsTTY()})
	if err != nil {
		return exitError("comparing project", err)
	}

	w := c.OutOrStdout()
	if !report.HasDrift() {
		fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("%s is in sync (%d files)", cfg.Name, len(report.Files))))
		return nil
	}

	writeDriftReport(w, report)
	return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: oerrors.ErrDrift, Printed: true}
}

func writeDriftReport(w io.Writer, report *drift.Report) {
	changed := report.Changed()

	tbl := output.NewTable("FILE", "STATUS").StatusColumn(1)
	for _, f := range report.Files {
		tbl.Row(f.Path, f.Status)
	}
	fmt.Fprintln(w, tbl.String())
	fmt.Fprintln(w)

	for _, f := range changed {
		fmt.Fprintln(w, output.FormatDiffHeader(f.Path, f.Status))
		fmt.Fprint(w, output.IndentDiff(f.Diff, "      "))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleSummary.Render(
		fmt.Sprintf("%d of %d files differ", len(changed), len(report.Files))))
}
