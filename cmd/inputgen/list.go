package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"pkg.jsn.cam/inputgen/pkg/generators"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available generators",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	name := color.New(color.FgCyan, color.Bold)
	for _, g := range generators.List() {
		desc, err := generators.Describe(g)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", name.Sprintf("%-12s", g), desc)
	}
	return nil
}
