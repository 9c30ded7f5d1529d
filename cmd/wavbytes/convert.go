package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/wavbytes"
	"github.com/cwbudde/wavbytes/internal/config"
	"github.com/cwbudde/wavbytes/internal/export"
	"github.com/cwbudde/wavbytes/internal/source"
)

const (
	showHex     = "hex"
	showDecimal = "decimal"
	showBoth    = "both"
)

type convertFlags struct {
	mode         string
	hexDelimiter string
	strict       bool
	show         string
	csvPath      string
	target       string
}

func convertCmd(a *app) *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "List the sample data of a wav file as hex and decimal values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := flags.apply(cmd, a.cfg)

			if err := cfg.Validate(); err != nil {
				return err
			}

			switch flags.show {
			case showHex, showDecimal, showBoth, "":
			default:
				return fmt.Errorf("invalid --show value %q (use %s, %s, %s or leave empty)", flags.show, showHex, showDecimal, showBoth)
			}

			res, err := convertFile(args[0], cfg)
			if err != nil {
				return err
			}

			a.logger.Debug("converted",
				zap.String("path", args[0]),
				zap.Stringer("mode", res.Mode),
				zap.Int("sampleBytes", res.SampleLen))

			p := newPrinter(a.out)

			if flags.show == showHex || flags.show == showBoth {
				p.heading("Hex")
				fmt.Fprintln(a.out, res.Output.Hex)
			}

			if flags.show == showDecimal || flags.show == showBoth {
				p.heading("Decimal")
				fmt.Fprintln(a.out, res.Output.Decimal)
			}

			if flags.csvPath == "" {
				return nil
			}

			if err := export.WriteCSV(flags.csvPath, res, cfg.Export.Target, cfg.Export.CSVDelimiter); err != nil {
				return fmt.Errorf("could not write to file: %w", err)
			}

			a.logger.Info("wrote csv", zap.String("path", flags.csvPath), zap.String("target", cfg.Export.Target))

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.mode, "mode", "", "sample representation: byte or word")
	cmd.Flags().StringVar(&flags.hexDelimiter, "hex-delimiter", "", "separator between hex values")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "reject input without RIFF/WAVE/fmt/data tags")
	cmd.Flags().StringVar(&flags.show, "show", showBoth, "listings to print: hex, decimal, both, or empty for none")
	cmd.Flags().StringVar(&flags.csvPath, "csv", "", "write the selected listing to this CSV file")
	cmd.Flags().StringVar(&flags.target, "target", "", "listing written to CSV: hex or decimal")

	return cmd
}

// apply returns a copy of cfg with explicitly set flags taking precedence.
func (f convertFlags) apply(cmd *cobra.Command, cfg *config.Config) *config.Config {
	out := *cfg

	if cmd.Flags().Changed("mode") {
		out.Format.Mode = f.mode
	}

	if cmd.Flags().Changed("hex-delimiter") {
		out.Format.HexDelimiter = f.hexDelimiter
	}

	if cmd.Flags().Changed("strict") {
		out.Parse.Strict = f.strict
	}

	if cmd.Flags().Changed("target") {
		out.Export.Target = f.target
	}

	return &out
}

// convertFile reads path and converts it with the options cfg describes.
func convertFile(path string, cfg *config.Config) (*wavbytes.Result, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	raw, err := source.ReadFile(path)
	if err != nil {
		return nil, err
	}

	res, err := wavbytes.Convert(raw, opts)
	if err != nil {
		return nil, fmt.Errorf("could not parse wav data: %w", err)
	}

	return res, nil
}
