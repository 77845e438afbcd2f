package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every corpus input to a directory, one file per input",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	cmd.Flags().StringP("dir", "d", "", "output directory")
	cmd.MarkFlagRequired("dir")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dir, _ := cmd.Flags().GetString("dir")

	c, err := openCorpus(cfg.CorpusPath)
	if err != nil {
		return err
	}
	defer c.Close()

	n, err := c.Export(dir)
	if err != nil {
		return fmt.Errorf("export failed after %d files: %w", n, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d inputs to %s\n", n, dir)
	return nil
}
