package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the corpus",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := openCorpus(cfg.CorpusPath)
	if err != nil {
		return err
	}
	defer c.Close()

	stats, err := c.Stats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Corpus:  %s\n", cfg.CorpusPath)
	fmt.Fprintf(out, "Inputs:  %s (%s dummy)\n", humanize.Comma(int64(stats.Count)), humanize.Comma(int64(stats.Dummies)))
	fmt.Fprintf(out, "Size:    %s\n", humanize.Bytes(stats.TotalBytes))
	if stats.Count > 0 {
		fmt.Fprintf(out, "Average: %s\n", humanize.Bytes(stats.TotalBytes/uint64(stats.Count)))
	}

	names := make([]string, 0, len(stats.ByGenerator))
	for name := range stats.ByGenerator {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-12s %s\n", name, humanize.Comma(int64(stats.ByGenerator[name])))
	}
	return nil
}
