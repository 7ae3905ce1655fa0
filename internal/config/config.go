// Package config loads the user defaults file (~/.cp-cli/config.yaml).
package config

import (
	"github.com/ijon007/cp-cli/internal/project"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config holds the defaults applied to new projects. Every field can be
// overridden by flags or answered in the prompts.
type Config struct {
	// Framework is the default framework identifier.
	// Env: CPCLI_FRAMEWORK
	Framework string `json:"framework,omitempty" yaml:"framework,omitempty" mapstructure:"framework"`

	// Database is the default database identifier.
	// Env: CPCLI_DATABASE
	Database string `json:"database,omitempty" yaml:"database,omitempty" mapstructure:"database"`

	// PackageManager pins a package manager and skips detection.
	// Env: CPCLI_PACKAGE_MANAGER
	PackageManager string `json:"packageManager,omitempty" yaml:"packageManager,omitempty" mapstructure:"packageManager"`

	Auth       bool `json:"auth" yaml:"auth" mapstructure:"auth"`
	Styling    bool `json:"styling" yaml:"styling" mapstructure:"styling"`
	Components bool `json:"components" yaml:"components" mapstructure:"components"`

	// Git runs git init in new projects. Default: true.
	Git bool `json:"git" yaml:"git" mapstructure:"git"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `cp-cli config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Framework: project.NextJS.String(),
		Database:  project.DatabaseNone.String(),
		Git:       true,
	}
}

// PackageManagerOverride returns the pinned package manager, or nil when
// detection should run.
func (c *Config) PackageManagerOverride() (*project.PackageManager, error) {
	if c == nil || c.PackageManager == "" {
		return nil, nil
	}
	pm, err := project.ParsePackageManager(c.PackageManager)
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

// Apply returns base with the configured defaults applied. Empty identifiers
// leave the corresponding base field untouched.
func (c *Config) Apply(base project.Config) (project.Config, error) {
	if c == nil {
		return base, nil
	}

	out := base
	if c.Framework != "" {
		fw, err := project.ParseFramework(c.Framework)
		if err != nil {
			return base, err
		}
		out.Framework = fw
	}
	if c.Database != "" {
		db, err := project.ParseDatabase(c.Database)
		if err != nil {
			return base, err
		}
		out.Database = db
	}
	out.Auth = c.Auth
	out.Styling = c.Styling
	out.Components = c.Components
	out.InitGit = c.Git

	return out, nil
}
