package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSSink(t *testing.T) {
	dir := t.TempDir()
	var s OSSink

	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, s.CreateDirectory(nested))
	require.NoError(t, s.CreateDirectory(nested), "creating an existing directory succeeds")

	file := filepath.Join(dir, "c", "file.txt")
	require.NoError(t, s.WriteFile(file, "one"))
	require.NoError(t, s.WriteFile(file, "two"))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestOSSink_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := OSSink{}.WriteFile(filepath.Join(blocker, "child.txt"), "x")
	assert.Error(t, err)
}
