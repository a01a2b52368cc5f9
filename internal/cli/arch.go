package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/polygamma/go-platform/pkg/platform"
)

type archResult struct {
	Name     string `yaml:"name" json:"name"`
	Arch     string `yaml:"arch" json:"arch"`
	WordBits int    `yaml:"word_bits" json:"word_bits"`
}

// NewArchCmd creates the arch command.
func NewArchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arch NAME...",
		Short: "Classify processor architecture names",
		Long: "Classify free-form architecture names, e.g. \"x86_64\" or \"aarch64\", into\n" +
			"canonical architectures and report their native word size.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]archResult, 0, len(args))
			for _, name := range args {
				arch, err := platform.ArchitectureOf(name)
				if err != nil {
					return err
				}
				results = append(results, archResult{
					Name:     name,
					Arch:     arch.String(),
					WordBits: arch.WordModel().Bits(),
				})
			}
			return render(cmd.OutOrStdout(), results, func(w io.Writer) {
				for _, r := range results {
					fmt.Fprintf(w, "%s: %s (%d-bit)\n", r.Name, r.Arch, r.WordBits)
				}
			})
		},
	}
}
