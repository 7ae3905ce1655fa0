package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ijon007/cp-cli/internal/config"
	"github.com/ijon007/cp-cli/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Long: `Write a defaults file with the built-in choices:

  framework: nextjs
  database: none
  auth, styling, components: false
  git: true

Examples:
  # Initialize configuration
  cp-cli config init

  # Overwrite existing configuration
  cp-cli config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	resolved, err := resolveConfigPath()
	if err != nil {
		return exitError("resolving config path", err)
	}

	if err := config.Write(resolved.Path, config.DefaultConfig(), configInitForce); err != nil {
		return exitError("writing configuration", err)
	}

	output.Println(output.FormatCheckmark("Configuration written to " + output.StyleNoun.Render(resolved.Path)))
	output.Println("Validate with: cp-cli config vet")
	return nil
}
