package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijon007/cp-cli/internal/project"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "nextjs", cfg.Framework)
	assert.Equal(t, "none", cfg.Database)
	assert.True(t, cfg.Git)
	assert.Empty(t, cfg.PackageManager)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestConfig_Apply(t *testing.T) {
	base := project.DefaultConfig("demo", project.Npm)

	t.Run("applies every field", func(t *testing.T) {
		cfg := &Config{
			Framework:  "tanstack",
			Database:   "neon",
			Auth:       true,
			Styling:    true,
			Components: true,
			Git:        false,
		}
		got, err := cfg.Apply(base)
		require.NoError(t, err)

		assert.Equal(t, "demo", got.Name)
		assert.Equal(t, project.TanStackStart, got.Framework)
		assert.Equal(t, project.NeonDrizzle, got.Database)
		assert.True(t, got.Auth)
		assert.True(t, got.Styling)
		assert.True(t, got.Components)
		assert.False(t, got.InitGit)
		assert.Equal(t, project.Npm, got.PackageManager)
	})

	t.Run("empty identifiers keep base", func(t *testing.T) {
		got, err := (&Config{Git: true}).Apply(base)
		require.NoError(t, err)
		assert.Equal(t, base, got)
	})

	t.Run("nil config keeps base", func(t *testing.T) {
		var cfg *Config
		got, err := cfg.Apply(base)
		require.NoError(t, err)
		assert.Equal(t, base, got)
	})

	t.Run("unknown framework", func(t *testing.T) {
		_, err := (&Config{Framework: "remix"}).Apply(base)
		assert.Error(t, err)
	})
}

func TestConfig_PackageManagerOverride(t *testing.T) {
	pm, err := (&Config{}).PackageManagerOverride()
	require.NoError(t, err)
	assert.Nil(t, pm)

	pm, err = (&Config{PackageManager: "pnpm"}).PackageManagerOverride()
	require.NoError(t, err)
	require.NotNil(t, pm)
	assert.Equal(t, project.Pnpm, *pm)

	_, err = (&Config{PackageManager: "cargo"}).PackageManagerOverride()
	assert.Error(t, err)
}
