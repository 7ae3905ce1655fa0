package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ijon007/cp-cli/internal/output"
	"github.com/ijon007/cp-cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show cp-cli version, commit, build date and Go toolchain.`,
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()

	output.Println(fmt.Sprintf("cp-cli version %s", info.Version))
	output.Println(fmt.Sprintf("  Commit:    %s", info.GitCommit))
	output.Println(fmt.Sprintf("  Built:     %s", info.BuildDate))
	output.Println(fmt.Sprintf("  Go:        %s", info.GoVersion))
	output.Println(fmt.Sprintf("  Platform:  %s", info.Platform))

	return nil
}
