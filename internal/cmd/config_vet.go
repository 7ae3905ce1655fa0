package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ijon007/cp-cli/internal/config"
	"github.com/ijon007/cp-cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the cp-cli defaults file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. Every key is known and every value is a legal identifier
  4. components is only enabled together with styling

Examples:
  # Validate default configuration
  cp-cli config vet

  # Validate custom config path
  cp-cli config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	resolved, err := resolveConfigPath()
	if err != nil {
		return exitError("resolving config path", err)
	}

	output.Debug("validating config",
		"path", resolved.Path,
		"source", resolved.Source,
	)

	validator, err := config.NewValidator()
	if err != nil {
		return exitError("loading config schema", err)
	}
	if err := validator.ValidateFile(resolved.Path); err != nil {
		return exitError("validating configuration", err)
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + resolved.Path))
	return nil
}
