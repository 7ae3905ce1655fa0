// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ijon007/cp-cli/internal/config"
	"github.com/ijon007/cp-cli/internal/output"
	"github.com/ijon007/cp-cli/internal/version"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	userConfig *config.Config
)

// NewRootCmd creates the root command for cp-cli.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cp-cli",
		Short: "Scaffold web projects from a small set of choices",
		Long: `cp-cli creates a ready-to-install web project from a framework, a database
and a handful of feature toggles.

Frameworks:  nextjs, tanstack-start
Databases:   none, convex, neon-drizzle
Features:    Clerk auth, Tailwind CSS, shadcn/ui`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runRoot,
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: CPCLI_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewCreateCmd())
	rootCmd.AddCommand(NewPlanCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func runRoot(cmd *cobra.Command, _ []string) error {
	output.Println(banner())
	output.Println("Welcome to the project scaffolder CLI!")
	output.Println("")
	return cmd.Help()
}

func banner() string {
	return fmt.Sprintf("✨ %s %s", output.StyleNoun.Render("cp-cli"), version.Get().Version)
}

// initializeGlobals sets up logging and loads the user defaults file.
func initializeGlobals(cmd *cobra.Command) error {
	resolved, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return err
	}

	loaded, err := loadUserConfig(resolved.Path)
	if err != nil {
		// Commands still work from built-in defaults; `config vet` reports the problem.
		output.Debug("config load error", "error", err)
		loaded = config.DefaultConfig()
	}
	userConfig = loaded

	// Resolve timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if userConfig.Log.Timestamps != nil {
		logCfg.Timestamps = userConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if err != nil {
		output.Warn("ignoring invalid config file", "path", resolved.Path, "error", err)
	}

	output.Debug("initializing CLI",
		"config", resolved.Path,
		"source", resolved.Source,
	)
	for source, shadowed := range resolved.Shadowed {
		output.Debug("config path shadowed", "source", source, "path", shadowed)
	}

	return nil
}

// loadUserConfig reads the defaults file and checks it against the schema.
func loadUserConfig(path string) (*config.Config, error) {
	loaded, err := config.NewLoader().Load(path)
	if err != nil {
		return nil, err
	}
	v, err := config.NewValidator()
	if err != nil {
		return nil, err
	}
	if err := v.Validate(loaded); err != nil {
		return nil, err
	}
	return loaded, nil
}

// GetUserConfig returns the loaded user defaults, or the built-in defaults
// when none were loaded.
func GetUserConfig() *config.Config {
	if userConfig == nil {
		return config.DefaultConfig()
	}
	return userConfig
}

// resolveConfigPath resolves the config file path from the --config flag and
// the environment.
func resolveConfigPath() (config.ResolvedPath, error) {
	return config.ResolveConfigPath(configFlag)
}
