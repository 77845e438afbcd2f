package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"pkg.jsn.cam/inputgen/internal/seeder"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the corpus with generated inputs",
		Args:  cobra.NoArgs,
		RunE:  runSeed,
	}
	addGenerationFlags(cmd)
	cmd.Flags().IntP("count", "n", 0, "number of inputs to generate")
	cmd.Flags().IntP("workers", "w", 0, "number of parallel workers")
	cmd.Flags().Bool("quiet", false, "hide the progress bar")
	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dummy, _ := cmd.Flags().GetBool("dummy")
	quiet, _ := cmd.Flags().GetBool("quiet")

	c, err := openCorpus(cfg.CorpusPath)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	s := seeder.New(c, randFactory(cfg))
	if !quiet {
		bar := progressbar.Default(int64(cfg.Count), "seeding")
		defer bar.Finish()
		s.OnProgress(func(int) { bar.Add(1) })
	}

	res, err := s.Run(ctx, seeder.Options{
		Generator: cfg.Generator,
		MaxSize:   cfg.MaxSize,
		Count:     cfg.Count,
		Workers:   cfg.Workers,
		Dummy:     dummy,
	})
	if err != nil {
		return fmt.Errorf("seeding stopped after %d inputs: %w", res.Added, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s %s inputs (%s) into %s in %v\n",
		color.GreenString("Seeded"),
		humanize.Comma(int64(res.Added)),
		humanize.Bytes(res.Bytes),
		cfg.CorpusPath,
		res.Elapsed.Round(time.Millisecond))
	return nil
}
