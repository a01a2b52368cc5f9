package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/polygamma/go-platform/pkg/platform"
)

type maplibResult struct {
	Library  string `yaml:"library" json:"library"`
	FileName string `yaml:"file_name" json:"file_name"`
}

// NewMapLibCmd creates the maplib command.
func NewMapLibCmd() *cobra.Command {
	var osName string

	cmd := &cobra.Command{
		Use:   "maplib NAME...",
		Short: "Map library names to platform file names",
		Long: "Map plain library names to the file names the operating system's loader\n" +
			"expects, e.g. \"foo\" to \"libfoo.so\" on Linux. Defaults to the current\n" +
			"operating system unless --os is given.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var os platform.OperatingSystem
			if osName != "" {
				classified, err := platform.OperatingSystemOf(osName)
				if err != nil {
					return err
				}
				os = classified
			} else {
				current, err := platform.Current()
				if err != nil {
					return err
				}
				os = current.OS
			}

			results := make([]maplibResult, 0, len(args))
			for _, name := range args {
				results = append(results, maplibResult{
					Library:  name,
					FileName: os.LibraryFileName(name),
				})
			}
			return render(cmd.OutOrStdout(), results, func(w io.Writer) {
				for _, r := range results {
					fmt.Fprintf(w, "%s: %s\n", r.Library, r.FileName)
				}
			})
		},
	}

	cmd.Flags().StringVar(&osName, "os", "", "operating system to map for (default: current)")
	return cmd
}
