package config

import (
	"os"

	"github.com/ijon007/cp-cli/internal/output"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "CPCLI_CONFIG"

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedPath is a config file path and where it came from.
type ResolvedPath struct {
	Path   string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file using precedence:
// (1) --config flag, (2) CPCLI_CONFIG env, (3) ~/.cp-cli/config.yaml.
func ResolveConfigPath(flagValue string) (ResolvedPath, error) {
	result := ResolvedPath{Shadowed: make(map[ConfigSource]string)}
	envValue := os.Getenv(EnvConfigPath)

	switch {
	case flagValue != "":
		result.Path = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
	case envValue != "":
		result.Path = envValue
		result.Source = SourceEnv
	default:
		paths, err := DefaultPaths()
		if err != nil {
			return result, err
		}
		result.Path = paths.ConfigFile
		result.Source = SourceDefault
	}

	expanded, err := ExpandPath(result.Path)
	if err != nil {
		return result, err
	}
	result.Path = expanded

	output.Debug("resolved config path", "path", result.Path, "source", result.Source)
	return result, nil
}
