package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/polygamma/go-platform/internal/cli"
	"github.com/polygamma/go-platform/internal/logger"
)

var (
	verbose      bool
	outputFormat string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platformctl",
		Short: "Describe and classify execution platforms",
		Long: `platformctl identifies operating systems, processor architectures, and
C ABI data models:
- detect the platform the process runs on
- classify free-form OS and architecture names
- parse and compare OS version strings
- map library names to platform file names`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logger.InitLogger("debug")
			} else {
				logger.InitLogger("info")
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (json, yaml, text)")

	// Set up CLI pkg variables
	cli.Verbose = &verbose
	cli.OutputFormat = &outputFormat

	// Add subcommands
	cmd.AddCommand(
		cli.NewDetectCmd(),
		cli.NewArchCmd(),
		cli.NewOSCmd(),
		cli.NewOSVersionCmd(),
		cli.NewMapLibCmd(),
		cli.NewMatchCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
