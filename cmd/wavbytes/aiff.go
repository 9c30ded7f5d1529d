package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/wavbytes"
	"github.com/cwbudde/wavbytes/internal/export"
	"github.com/cwbudde/wavbytes/internal/source"
)

func aiffCmd(a *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "aiff FILE",
		Short: "Convert the PCM data of a wav file into an aiff file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			raw, err := source.ReadFile(args[0])
			if err != nil {
				return err
			}

			if a.cfg.Parse.Strict {
				if err := wavbytes.Validate(raw); err != nil {
					return err
				}
			}

			h, err := wavbytes.Parse(raw)
			if err != nil {
				return err
			}

			dst := outPath
			if dst == "" {
				dst = export.AIFFPath(args[0])
			}

			out, err := os.Create(dst)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", dst, err)
			}

			defer func() {
				cerr := out.Close()
				if cerr != nil && err == nil {
					err = fmt.Errorf("failed to close output file: %w", cerr)
				}

				if err != nil {
					_ = os.Remove(dst)
				}
			}()

			if err := export.WriteAIFF(out, h, raw[h.DataOffset:]); err != nil {
				return err
			}

			a.logger.Debug("aiff written", zap.String("path", dst), zap.Stringer("header", h))
			fmt.Fprintf(a.out, "Wav file converted to %s\n", dst)

			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "output path (defaults to the input path with an .aif extension)")

	return cmd
}
