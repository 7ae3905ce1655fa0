package composer

import (
	"fmt"
	"path"
	"strings"
)

// Artifact is a single file of the generated project.
type Artifact struct {
	// Path is relative to the project root and always uses forward slashes.
	Path string `json:"path"`

	// Content is the full file body.
	Content string `json:"-"`

	// Description is a short label shown in plan output.
	Description string `json:"description,omitempty"`
}

// Dir returns the slash-separated parent directory of the artifact, or "" for
// files at the project root.
func (a Artifact) Dir() string {
	d := path.Dir(a.Path)
	if d == "." {
		return ""
	}
	return d
}

// Set is an ordered list of artifacts with unique paths.
type Set struct {
	artifacts []Artifact
	index     map[string]int
}

// Add appends an artifact. Adding a second artifact for the same path is a
// composer bug and panics.
func (s *Set) Add(a Artifact) {
	if err := checkPath(a.Path); err != nil {
		panic(fmt.Sprintf("composer: %v", err))
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[a.Path]; ok {
		panic(fmt.Sprintf("composer: duplicate artifact %q", a.Path))
	}
	s.index[a.Path] = len(s.artifacts)
	s.artifacts = append(s.artifacts, a)
}

func (s *Set) add(p, description, content string) {
	s.Add(Artifact{Path: p, Content: content, Description: description})
}

// Len returns the number of artifacts.
func (s Set) Len() int {
	return len(s.artifacts)
}

// All returns the artifacts in emission order.
func (s Set) All() []Artifact {
	out := make([]Artifact, len(s.artifacts))
	copy(out, s.artifacts)
	return out
}

// Paths returns artifact paths in emission order.
func (s Set) Paths() []string {
	out := make([]string, len(s.artifacts))
	for i, a := range s.artifacts {
		out[i] = a.Path
	}
	return out
}

// Has reports whether the set contains an artifact at p.
func (s Set) Has(p string) bool {
	_, ok := s.index[p]
	return ok
}

// Get returns the artifact at p.
func (s Set) Get(p string) (Artifact, bool) {
	i, ok := s.index[p]
	if !ok {
		return Artifact{}, false
	}
	return s.artifacts[i], true
}

// Duplicates returns paths that appear more than once. A Set built through Add
// never has any.
func (s Set) Duplicates() []string {
	counts := make(map[string]int, len(s.artifacts))
	var dups []string
	for _, a := range s.artifacts {
		counts[a.Path]++
		if counts[a.Path] == 2 {
			dups = append(dups, a.Path)
		}
	}
	return dups
}

func checkPath(p string) error {
	switch {
	case p == "":
		return fmt.Errorf("empty artifact path")
	case path.IsAbs(p):
		return fmt.Errorf("artifact path %q must be relative", p)
	case strings.Contains(p, `\`):
		return fmt.Errorf("artifact path %q must use forward slashes", p)
	case path.Clean(p) != p || p == ".." || strings.HasPrefix(p, "../"):
		return fmt.Errorf("artifact path %q is not clean", p)
	}
	return nil
}
