package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version information for platformctl",
		Run:   runVersion,
	}

	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "platformctl version %s\n", Version)
	fmt.Fprintf(cmd.OutOrStdout(), "Build date: %s\n", BuildDate)
	fmt.Fprintf(cmd.OutOrStdout(), "Git commit: %s\n", GitCommit)
}
