package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/wavbytes"
	"github.com/cwbudde/wavbytes/internal/source"
)

func infoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print the header fields of a wav file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			sampleLen := len(raw) - h.DataOffset
			a.logger.Debug("parsed header", zap.String("path", args[0]), zap.Stringer("header", h))

			p := newPrinter(a.out)
			for _, f := range h.Fields() {
				p.field(f.Name, f.Value)
			}

			p.field("Audio Format", strconv.FormatUint(uint64(h.AudioFormat), 10))
			p.field("Block Align", strconv.FormatUint(uint64(h.BlockAlign), 10))
			p.field("Data Size", strconv.FormatUint(uint64(h.DataSize), 10))
			p.field("Sample Bytes", strconv.Itoa(sampleLen))
			p.field("Duration", h.Duration(sampleLen).String())

			return nil
		},
	}
}
