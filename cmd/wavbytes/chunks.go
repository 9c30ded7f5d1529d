package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/wavbytes"
	"github.com/cwbudde/wavbytes/internal/source"
)

func chunksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chunks FILE",
		Short: "List the RIFF chunks of a wav file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := source.ReadFile(args[0])
			if err != nil {
				return err
			}

			chunks, err := wavbytes.Chunks(raw)
			if err != nil {
				return err
			}

			if len(chunks) == 0 {
				fmt.Fprintln(a.out, "No chunks present")
				return nil
			}

			p := newPrinter(a.out)
			for i, c := range chunks {
				p.field(fmt.Sprintf("chunk [%d]", i), fmt.Sprintf("%q offset=%d size=%d", c.ID, c.Offset, c.Size))
			}

			return nil
		},
	}
}
