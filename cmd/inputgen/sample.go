package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"pkg.jsn.cam/inputgen/pkg/generators"
	"pkg.jsn.cam/inputgen/pkg/inputs"
)

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate a single input and write it to stdout",
		Args:  cobra.NoArgs,
		RunE:  runSample,
	}
	addGenerationFlags(cmd)
	cmd.Flags().Bool("hex", false, "print the input as hex instead of raw bytes")
	return cmd
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := generators.Get(cfg.Generator, cfg.MaxSize)
	if err != nil {
		return err
	}

	var in *inputs.BytesInput
	if dummy, _ := cmd.Flags().GetBool("dummy"); dummy {
		in = gen.GenerateDummy()
	} else {
		in, err = gen.Generate(randFactory(cfg)(0))
		if err != nil {
			return fmt.Errorf("failed to generate input: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if asHex, _ := cmd.Flags().GetBool("hex"); asHex {
		_, err = fmt.Fprintln(out, in.String())
		return err
	}
	_, err = out.Write(in.Bytes())
	return err
}
