package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_AddAndLookup(t *testing.T) {
	var s Set
	s.add("package.json", "", "{}")
	s.add("app/page.tsx", "", "page")

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"package.json", "app/page.tsx"}, s.Paths())
	assert.True(t, s.Has("app/page.tsx"))
	assert.False(t, s.Has("app/layout.tsx"))

	a, ok := s.Get("app/page.tsx")
	assert.True(t, ok)
	assert.Equal(t, "page", a.Content)
	assert.Equal(t, "app", a.Dir())
}

func TestSet_AddDuplicatePanics(t *testing.T) {
	var s Set
	s.add("package.json", "", "{}")
	assert.Panics(t, func() { s.add("package.json", "", "{}") })
}

func TestSet_AddInvalidPathPanics(t *testing.T) {
	for _, p := range []string{"", "/etc/passwd", "../escape", "a/../b", `app\page.tsx`} {
		t.Run(p, func(t *testing.T) {
			var s Set
			assert.Panics(t, func() { s.add(p, "", "") })
		})
	}
}

func TestSet_Duplicates(t *testing.T) {
	s := fromArtifacts(
		Artifact{Path: "a.ts"},
		Artifact{Path: "b.ts"},
		Artifact{Path: "a.ts"},
	)
	assert.Equal(t, []string{"a.ts"}, s.Duplicates())
}

// fromArtifacts builds a Set without the duplicate check. Callers are expected
// to inspect Duplicates.
func fromArtifacts(artifacts ...Artifact) Set {
	s := Set{index: make(map[string]int, len(artifacts))}
	for _, a := range artifacts {
		if _, ok := s.index[a.Path]; !ok {
			s.index[a.Path] = len(s.artifacts)
		}
		s.artifacts = append(s.artifacts, a)
	}
	return s
}
