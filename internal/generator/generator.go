// Package generator realizes a composed project on disk.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ijon007/cp-cli/internal/composer"
	oerrors "github.com/ijon007/cp-cli/internal/errors"
	"github.com/ijon007/cp-cli/internal/output"
	"github.com/ijon007/cp-cli/internal/project"
	"github.com/ijon007/cp-cli/internal/vcs"
)

// Options configures a Generator.
type Options struct {
	// WorkDir is the directory the project is created in. Defaults to the
	// current working directory.
	WorkDir string

	// Sink receives every directory and file. Defaults to OSSink.
	Sink Sink

	// VCS initializes version control when the config asks for it.
	// Defaults to git.
	VCS vcs.Initializer

	// Atomic stages the project in a temporary sibling directory and renames
	// it into place only after every file was written.
	Atomic bool
}

// Result describes a finished generation.
type Result struct {
	// Root is the absolute path of the generated project.
	Root string `json:"root"`

	// Files lists the written files relative to Root, in write order.
	Files []string `json:"files"`

	// Warnings holds non-fatal problems, such as a failed git init.
	Warnings []string `json:"warnings,omitempty"`

	// VCSInitialized is true when git init succeeded.
	VCSInitialized bool `json:"vcsInitialized"`
}

// Generator creates projects.
type Generator struct {
	workDir string
	sink    Sink
	vcs     vcs.Initializer
	atomic  bool
}

// New creates a Generator.
func New(opts Options) *Generator {
	g := &Generator{
		workDir: opts.WorkDir,
		sink:    opts.Sink,
		vcs:     opts.VCS,
		atomic:  opts.Atomic,
	}
	if g.sink == nil {
		g.sink = OSSink{}
	}
	if g.vcs == nil {
		g.vcs = vcs.NewGit()
	}
	return g
}

// Target returns the directory cfg would be generated into.
func (g *Generator) Target(cfg project.Config) (string, error) {
	workDir := g.workDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", oerrors.WrapIO(err, "resolving working directory")
		}
		workDir = wd
	}
	abs, err := filepath.Abs(filepath.Join(workDir, cfg.Name))
	if err != nil {
		return "", oerrors.WrapIO(err, "resolving project directory")
	}
	return abs, nil
}

// Generate creates the project described by cfg.
//
// The target directory must not exist. Files are written in composer order and
// the first failure aborts generation. Without Atomic, anything written before
// the failure stays on disk. A failed git init is reported in
// Result.Warnings and does not fail generation.
func (g *Generator) Generate(ctx context.Context, cfg project.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target, err := g.Target(cfg)
	if err != nil {
		return nil, err
	}
	if err := checkAbsent(target); err != nil {
		return nil, err
	}

	log := output.ProjectLogger(cfg.Name)
	set := composer.Compose(cfg)
	result := &Result{Root: target}

	root := target
	if g.atomic {
		staging, err := os.MkdirTemp(filepath.Dir(target), ".cp-cli-"+cfg.Name+"-")
		if err != nil {
			return nil, oerrors.WrapIO(err, "creating staging directory")
		}
		defer os.RemoveAll(staging)
		// MkdirTemp creates 0700; the staged root becomes the project root.
		if err := os.Chmod(staging, 0o755); err != nil {
			return nil, oerrors.WrapIO(err, "setting staging directory mode")
		}
		root = staging
		log.Debug("staging project", "dir", staging)
	}

	err = output.RunWithSpinner(ctx, func() error {
		if err := g.sink.CreateDirectory(root); err != nil {
			return oerrors.WrapIO(err, fmt.Sprintf("creating directory %s", root))
		}
		return nil
	}, output.WithTitle("Creating project directory..."))
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err = output.RunWithSpinner(ctx, func() error {
		return g.realize(root, set, result)
	}, output.WithTitle(fmt.Sprintf("Generating %s project files...", cfg.Framework.Title())))
	if err != nil {
		return nil, err
	}

	if g.atomic {
		// The target may have appeared while staging.
		if err := checkAbsent(target); err != nil {
			return nil, err
		}
		if err := os.Rename(root, target); err != nil {
			return nil, oerrors.WrapIO(err, fmt.Sprintf("moving project into %s", target))
		}
	}
	log.Info("project files written", "files", len(result.Files))

	if !cfg.InitGit {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err = output.RunWithSpinner(ctx, func() error {
		return g.vcs.Init(ctx, target)
	}, output.WithTitle("Initializing git repository..."))
	if err != nil {
		msg := fmt.Sprintf("failed to initialize git repository: %v", err)
		log.Warn(msg)
		result.Warnings = append(result.Warnings, msg)
	} else {
		result.VCSInitialized = true
	}

	return result, nil
}

// realize writes every artifact below root, creating each parent directory
// before its file.
func (g *Generator) realize(root string, set composer.Set, result *Result) error {
	for _, a := range set.All() {
		path := filepath.Join(root, filepath.FromSlash(a.Path))

		if dir := a.Dir(); dir != "" {
			if err := g.sink.CreateDirectory(filepath.Dir(path)); err != nil {
				return oerrors.WrapIO(err, fmt.Sprintf("creating directory %s", dir))
			}
		}
		if err := g.sink.WriteFile(path, a.Content); err != nil {
			return oerrors.WrapIO(err, fmt.Sprintf("writing %s", a.Path))
		}

		output.Debug("wrote file", "path", a.Path, "bytes", len(a.Content))
		result.Files = append(result.Files, a.Path)
	}
	return nil
}

func checkAbsent(target string) error {
	_, err := os.Lstat(target)
	switch {
	case err == nil:
		return oerrors.NewExistsError(target)
	case os.IsNotExist(err):
		return nil
	default:
		return oerrors.WrapIO(err, fmt.Sprintf("checking %s", target))
	}
}
