// Package drift compares an existing project directory with the files cp-cli
// would generate for it.
package drift

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"

	"github.com/ijon007/cp-cli/internal/composer"
	oerrors "github.com/ijon007/cp-cli/internal/errors"
	"github.com/ijon007/cp-cli/internal/output"
	"github.com/ijon007/cp-cli/internal/project"
)

// FileDiff is the comparison result for one file.
type FileDiff struct {
	// Path is relative to the project root.
	Path string `json:"path"`

	// Status is one of output.StatusUnchanged, StatusModified, StatusMissing
	// or StatusExtra.
	Status string `json:"status"`

	// Diff is a human-readable description of the change, if any.
	Diff string `json:"diff,omitempty"`
}

// Report is the result of comparing a project directory.
type Report struct {
	Root  string     `json:"root"`
	Files []FileDiff `json:"files"`
}

// HasDrift reports whether any file differs from the composed set.
func (r *Report) HasDrift() bool {
	for _, f := range r.Files {
		if f.Status != output.StatusUnchanged {
			return true
		}
	}
	return false
}

// Changed returns the files that are not unchanged.
func (r *Report) Changed() []FileDiff {
	var out []FileDiff
	for _, f := range r.Files {
		if f.Status != output.StatusUnchanged {
			out = append(out, f)
		}
	}
	return out
}

// Options configures Compare.
type Options struct {
	// Color enables styled dyff output.
	Color bool
}

// Compare checks root against the artifacts composed for cfg.
//
// Every composed file is reported as unchanged, modified or missing. Files
// that cp-cli only emits for other feature choices of the same framework are
// reported as extra when they exist on disk.
func Compare(root string, cfg project.Config, opts Options) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("project directory %q not found", root), root,
				"Pass the path of a project created by cp-cli.")
		}
		return nil, oerrors.WrapIO(err, "reading project directory")
	}
	if !info.IsDir() {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("%q is not a directory", root), root, "")
	}

	if !cfg.Framework.IsValid() {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("unknown framework %q", cfg.Framework), "framework", "")
	}

	set := composer.Compose(cfg)
	report := &Report{Root: root}

	for _, a := range set.All() {
		var fd FileDiff
		if a.Path == envFile {
			fd, err = compareEnv(root, composer.EnvVars(cfg))
		} else {
			fd, err = compareFile(root, a, opts)
		}
		if err != nil {
			return nil, err
		}
		output.Debug("compared file", "path", a.Path, "status", fd.Status)
		report.Files = append(report.Files, fd)
	}

	for _, p := range managedPaths(cfg.Framework) {
		if set.Has(p) {
			continue
		}
		exists, err := fileExists(filepath.Join(root, filepath.FromSlash(p)))
		if err != nil {
			return nil, err
		}
		if exists {
			report.Files = append(report.Files, FileDiff{
				Path:   p,
				Status: output.StatusExtra,
				Diff:   "not generated for this configuration",
			})
		}
	}

	return report, nil
}

func compareFile(root string, a composer.Artifact, opts Options) (FileDiff, error) {
	fd := FileDiff{Path: a.Path}

	actual, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(a.Path)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fd.Status = output.StatusMissing
			return fd, nil
		}
		return fd, oerrors.WrapIO(err, fmt.Sprintf("reading %s", a.Path))
	}

	if bytes.Equal(actual, []byte(a.Content)) {
		fd.Status = output.StatusUnchanged
		return fd, nil
	}
	fd.Status = output.StatusModified

	if strings.HasSuffix(a.Path, ".json") {
		diff, err := structuralDiff(a.Path, []byte(a.Content), actual, opts.Color)
		if err != nil {
			// Unparseable JSON still counts as modified.
			fd.Diff = fmt.Sprintf("cannot parse: %v", err)
			return fd, nil
		}
		if diff == "" {
			fd.Diff = "formatting differs"
		} else {
			fd.Diff = diff
		}
		return fd, nil
	}

	fd.Diff = lineSummary(a.Content, string(actual))
	return fd, nil
}

// envFile holds secrets the user fills in after create, so only its variable
// names are compared.
const envFile = ".env.local"

// compareEnv compares the ordered variable names in root's env file with want.
// Values are ignored.
func compareEnv(root string, want []string) (FileDiff, error) {
	fd := FileDiff{Path: envFile}

	actual, err := os.ReadFile(filepath.Join(root, envFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fd.Status = output.StatusMissing
			return fd, nil
		}
		return fd, oerrors.WrapIO(err, fmt.Sprintf("reading %s", envFile))
	}

	got := envKeys(string(actual))
	if slices.Equal(want, got) {
		fd.Status = output.StatusUnchanged
		return fd, nil
	}
	fd.Status = output.StatusModified

	var parts []string
	if missing := subtract(want, got); len(missing) > 0 {
		parts = append(parts, "missing keys: "+strings.Join(missing, ", "))
	}
	if extra := subtract(got, want); len(extra) > 0 {
		parts = append(parts, "extra keys: "+strings.Join(extra, ", "))
	}
	if len(parts) == 0 {
		parts = append(parts, "key order differs")
	}
	fd.Diff = strings.Join(parts, "; ")
	return fd, nil
}

// envKeys returns the variable names of a dotenv file in order, skipping
// blank lines and comments.
func envKeys(content string) []string {
	var keys []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, _, _ := strings.Cut(line, "=")
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		keys = append(keys, key)
	}
	return keys
}

// subtract returns the elements of a not present in b, preserving order.
func subtract(a, b []string) []string {
	var out []string
	for _, k := range a {
		if !slices.Contains(b, k) {
			out = append(out, k)
		}
	}
	return out
}

// structuralDiff compares two JSON documents with dyff. JSON is valid YAML,
// so ytbx loads it directly.
func structuralDiff(name string, expected, actual []byte, useColor bool) (string, error) {
	from, err := loadInput("generated/"+name, expected)
	if err != nil {
		return "", fmt.Errorf("parsing generated %s: %w", name, err)
	}
	to, err := loadInput(name, actual)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", name, err)
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", fmt.Errorf("comparing %s: %w", name, err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	writer := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := writer.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

func loadInput(location string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: location}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: location, Documents: docs}, nil
}

// lineSummary describes how many lines were added or removed relative to the
// generated content.
func lineSummary(expected, actual string) string {
	want := countLines(expected)
	got := countLines(actual)

	missing, extra := 0, 0
	for line, n := range want {
		if d := n - got[line]; d > 0 {
			missing += d
		}
	}
	for line, n := range got {
		if d := n - want[line]; d > 0 {
			extra += d
		}
	}
	if missing == 0 && extra == 0 {
		return "line order or whitespace differs"
	}
	return fmt.Sprintf("%d generated line(s) missing, %d line(s) added", missing, extra)
}

func countLines(s string) map[string]int {
	counts := make(map[string]int)
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		counts[l]++
	}
	return counts
}

// managedPaths returns every path the framework's composer can emit.
func managedPaths(fw project.Framework) []string {
	seen := make(map[string]bool)
	for _, db := range project.AllDatabases() {
		for _, features := range [][3]bool{{true, true, true}, {false, false, false}} {
			cfg := project.DefaultConfig(project.DefaultName, project.Npm)
			cfg.Framework = fw
			cfg.Database = db
			cfg.Auth, cfg.Styling, cfg.Components = features[0], features[1], features[2]
			for _, p := range composer.Compose(cfg).Paths() {
				seen[p] = true
			}
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, oerrors.WrapIO(err, fmt.Sprintf("checking %s", path))
}
