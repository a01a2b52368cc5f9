package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polygamma/go-platform/internal/logger"
	"github.com/polygamma/go-platform/pkg/platform"
)

// NewMatchCmd creates the match command.
func NewMatchCmd() *cobra.Command {
	var constraint string

	cmd := &cobra.Command{
		Use:   "match SELECTOR",
		Short: "Match the current platform against a selector",
		Long: "Match the current platform against an \"os/arch\" selector; either part may be\n" +
			"\"any\". Exits non-zero when the platform does not match. A version constraint\n" +
			"like \">= 6.1\" restricts the operating system version.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, err := platform.ParseSelector(args[0])
			if err != nil {
				return err
			}
			selector.VersionConstraint = constraint
			if err := selector.Validate(); err != nil {
				return err
			}

			current, err := platform.Current()
			if err != nil {
				return err
			}
			logger.Debug("matching platform",
				logger.Fields{"platform": current.String(), "selector": selector.String()})

			if !selector.Matches(current) {
				return fmt.Errorf("%s does not match %s", current, selector)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s matches %s\n", current, selector)
			return nil
		},
	}

	cmd.Flags().StringVar(&constraint, "version-constraint", "", "OS version constraint, e.g. \">= 10.15\"")
	return cmd
}
