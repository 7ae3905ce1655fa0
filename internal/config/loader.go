package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	oerrors "github.com/ijon007/cp-cli/internal/errors"
)

// Environment variable prefix for cp-cli configuration.
const envPrefix = "CPCLI"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("framework", "CPCLI_FRAMEWORK")
	_ = v.BindEnv("database", "CPCLI_DATABASE")
	_ = v.BindEnv("packageManager", "CPCLI_PACKAGE_MANAGER")
	_ = v.BindEnv("auth", "CPCLI_AUTH")
	_ = v.BindEnv("styling", "CPCLI_STYLING")
	_ = v.BindEnv("components", "CPCLI_COMPONENTS")
	_ = v.BindEnv("git", "CPCLI_GIT")
	_ = v.BindEnv("log.timestamps", "CPCLI_LOG_TIMESTAMPS")

	defaults := DefaultConfig()
	v.SetDefault("framework", defaults.Framework)
	v.SetDefault("database", defaults.Database)
	v.SetDefault("git", defaults.Git)

	return &Loader{v: v}
}

// Load loads configuration from path. A missing file is not an error.
// Environment variables take precedence over file values.
func (l *Loader) Load(path string) (*Config, error) {
	l.v.SetConfigFile(path)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.Wrap(oerrors.ErrValidation, fmt.Sprintf("reading config file %s: %v", path, err))
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, oerrors.Wrap(oerrors.ErrValidation, fmt.Sprintf("decoding config: %v", err))
	}

	return &cfg, nil
}

// Exists reports whether a file exists at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Write writes cfg as YAML to path, creating the parent directory.
// An existing file is only replaced when force is set.
func Write(path string, cfg *Config, force bool) error {
	exists, err := Exists(path)
	if err != nil {
		return oerrors.WrapIO(err, "checking config file")
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "config file already exists",
			Message:  fmt.Sprintf("config file %q already exists", path),
			Location: path,
			Hint:     "Use --force to overwrite it.",
			Cause:    oerrors.ErrExists,
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return oerrors.WrapIO(err, "creating config directory")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return oerrors.WrapIO(err, "writing config file")
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}
