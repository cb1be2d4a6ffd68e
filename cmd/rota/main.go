package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/rota/internal/cli"
	"github.com/example/rota/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "rota",
		Short:   "rota - employee shift scheduling with operation segmentation",
		Version: version.String(),
		Long: `rota is a CLI tool for managing employee shifts. Shifts can be divided
into contiguous, operation-tagged time segments, validated for full
coverage, and rendered as a proportional color bar.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.OpCmd())
	rootCmd.AddCommand(cli.ShiftCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
