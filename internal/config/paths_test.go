package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "no tilde", input: "/absolute/path", expected: "/absolute/path"},
		{name: "relative path without tilde", input: "relative/path", expected: "relative/path"},
		{name: "tilde only", input: "~", expected: homeDir},
		{name: "tilde with path", input: "~/.cp-cli/config.yaml", expected: filepath.Join(homeDir, ".cp-cli/config.yaml")},
		{name: "tilde username unsupported", input: "~other/config.yaml", expected: "~other/config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	assert.Equal(t, ".cp-cli", filepath.Base(paths.HomeDir))
	assert.Equal(t, filepath.Join(paths.HomeDir, "config.yaml"), paths.ConfigFile)
}
