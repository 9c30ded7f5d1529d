package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/wavbytes/internal/config"
	"github.com/cwbudde/wavbytes/internal/export"
	"github.com/cwbudde/wavbytes/internal/watch"
)

var errMissingCSVPath = errors.New("--csv is required")

func watchCmd(a *app) *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Rewrite the CSV export every time the wav file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.csvPath == "" {
				return errMissingCSVPath
			}

			cfg := flags.apply(cmd, a.cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			path := args[0]

			// a bad initial file is reported but watching continues
			if err := reconvert(path, flags.csvPath, cfg); err != nil {
				a.logger.Warn("initial conversion failed", zap.String("path", path), zap.Error(err))
			} else {
				a.logger.Info("wrote csv", zap.String("path", flags.csvPath))
			}

			w, err := watch.New(path, a.logger)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			w.Start(ctx, func() error {
				if err := reconvert(path, flags.csvPath, cfg); err != nil {
					return err
				}

				a.logger.Info("wrote csv", zap.String("path", flags.csvPath))

				return nil
			})

			fmt.Fprintf(a.out, "Watching %s, writing %s\n", path, flags.csvPath)

			<-ctx.Done()

			return w.Close()
		},
	}

	cmd.Flags().StringVar(&flags.mode, "mode", "", "sample representation: byte or word")
	cmd.Flags().StringVar(&flags.hexDelimiter, "hex-delimiter", "", "separator between hex values")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "reject input without RIFF/WAVE/fmt/data tags")
	cmd.Flags().StringVar(&flags.csvPath, "csv", "", "CSV file rewritten on every change")
	cmd.Flags().StringVar(&flags.target, "target", "", "listing written to CSV: hex or decimal")

	return cmd
}

// reconvert converts path and replaces the CSV at csvPath. On failure the
// existing CSV is left as it was.
func reconvert(path, csvPath string, cfg *config.Config) error {
	res, err := convertFile(path, cfg)
	if err != nil {
		return err
	}

	return export.WriteCSV(csvPath, res, cfg.Export.Target, cfg.Export.CSVDelimiter)
}
