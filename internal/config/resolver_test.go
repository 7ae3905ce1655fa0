package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPath(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/env/config.yaml")

		got, err := ResolveConfigPath("/flag/config.yaml")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.yaml", got.Path)
		assert.Equal(t, SourceFlag, got.Source)
		assert.Equal(t, "/env/config.yaml", got.Shadowed[SourceEnv])
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/env/config.yaml")

		got, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, "/env/config.yaml", got.Path)
		assert.Equal(t, SourceEnv, got.Source)
		assert.Empty(t, got.Shadowed)
	})

	t.Run("default path", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")

		got, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, SourceDefault, got.Source)
		assert.Equal(t, "config.yaml", filepath.Base(got.Path))
	})

	t.Run("tilde is expanded", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")

		got, err := ResolveConfigPath("~/custom.yaml")
		require.NoError(t, err)
		assert.NotContains(t, got.Path, "~")
	})
}
