package main

import (
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd builds the full command tree
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "inputgen",
		Short:        "Generate and manage synthetic fuzzing inputs",
		Long:         `inputgen produces random or dummy byte inputs and seeds them into a persistent corpus.`,
		SilenceUsage: true,
	}

	root.AddCommand(newListCmd())
	root.AddCommand(newSampleCmd())
	root.AddCommand(newSeedCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newExportCmd())

	root.PersistentFlags().String("config", "", "path to a TOML config file")
	root.PersistentFlags().String("corpus", "", "corpus database path (overrides config)")
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
