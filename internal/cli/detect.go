package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/polygamma/go-platform/internal/logger"
	"github.com/polygamma/go-platform/pkg/platform"
)

// NewDetectCmd creates the detect command.
func NewDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Describe the platform this process is running on",
		Long: "Probe the host environment once and describe the detected operating system,\n" +
			"processor architecture, and data model.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current, err := platform.Current()
			if err != nil {
				return err
			}
			logger.Debug("probed current platform", logger.Fields{"platform": current.String()})
			return render(cmd.OutOrStdout(), current, func(w io.Writer) {
				printPlatform(w, current)
			})
		},
	}
}

func printPlatform(w io.Writer, p platform.Platform) {
	fmt.Fprintf(w, "os:         %s\n", p.OS)
	if p.OSVersion != nil {
		fmt.Fprintf(w, "os version: %s\n", p.OSVersion)
	}
	fmt.Fprintf(w, "arch:       %s\n", p.Arch)
	fmt.Fprintf(w, "data model: %s\n", p.Model)
	fmt.Fprintf(w, "word size:  %s\n", p.Arch.WordModel())
	fmt.Fprintf(w, "pointers:   %s\n", p.Model.PointerModel())
}
