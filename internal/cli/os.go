package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/polygamma/go-platform/pkg/platform"
)

type osResult struct {
	Name             string `yaml:"name" json:"name"`
	OS               string `yaml:"os" json:"os"`
	Unix             bool   `yaml:"unix" json:"unix"`
	LibraryPrefix    string `yaml:"library_prefix" json:"library_prefix"`
	LibraryExtension string `yaml:"library_extension" json:"library_extension"`
}

// NewOSCmd creates the os command.
func NewOSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "os NAME...",
		Short: "Classify operating system names",
		Long: "Classify free-form operating system names, e.g. \"Mac OS X\" or \"Windows 11\",\n" +
			"into canonical operating systems and report their library naming conventions.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]osResult, 0, len(args))
			for _, name := range args {
				os, err := platform.OperatingSystemOf(name)
				if err != nil {
					return err
				}
				results = append(results, osResult{
					Name:             name,
					OS:               os.String(),
					Unix:             os.IsUnix(),
					LibraryPrefix:    os.LibraryPrefix(),
					LibraryExtension: os.LibraryExtension(),
				})
			}
			return render(cmd.OutOrStdout(), results, func(w io.Writer) {
				for _, r := range results {
					fmt.Fprintf(w, "%s: %s (%s*.%s)\n", r.Name, r.OS, r.LibraryPrefix, r.LibraryExtension)
				}
			})
		},
	}
}
