package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/polygamma/go-platform/pkg/platform"
)

// NewOSVersionCmd creates the osversion command group.
func NewOSVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "osversion",
		Short: "Parse and compare operating system version strings",
	}
	cmd.AddCommand(newOSVersionParseCmd(), newOSVersionCompareCmd())
	return cmd
}

type versionResult struct {
	Input string `yaml:"input" json:"input"`
	Major int    `yaml:"major" json:"major"`
	Minor int    `yaml:"minor" json:"minor"`
	Patch int    `yaml:"patch" json:"patch"`
}

func newOSVersionParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse VERSION",
		Short: "Parse a version string into its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := platform.ParseOSVersion(args[0])
			if err != nil {
				return err
			}
			result := versionResult{
				Input: args[0],
				Major: version.Major,
				Minor: version.Minor,
				Patch: version.Patch,
			}
			return render(cmd.OutOrStdout(), result, func(w io.Writer) {
				fmt.Fprintf(w, "%s: %s\n", args[0], version)
			})
		},
	}
}

func newOSVersionCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two version strings",
		Long: "Compare two version strings component-wise. Prints -1, 0, or 1 if A is older\n" +
			"than, equal to, or newer than B.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := platform.ParseOSVersion(args[0])
			if err != nil {
				return err
			}
			b, err := platform.ParseOSVersion(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.Compare(b))
			return nil
		},
	}
}
