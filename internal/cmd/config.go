package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the cp-cli defaults file",
		Long: `Manage the cp-cli defaults file.

The file holds the answers 'cp-cli create --yes' uses when no flag is given.
Its location is resolved using precedence:
  --config flag > CPCLI_CONFIG env > ~/.cp-cli/config.yaml`,
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigVetCmd())

	return cmd
}
