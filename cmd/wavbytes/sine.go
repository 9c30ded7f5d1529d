package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/wavbytes"
	"github.com/cwbudde/wavbytes/internal/source"
)

var errInvalidSineParams = errors.New("length and sample rate must be positive")

func sineCmd(a *app) *cobra.Command {
	var (
		output     string
		frequency  float64
		length     float64
		sampleRate uint32
	)

	cmd := &cobra.Command{
		Use:   "sine",
		Short: "Write a 16-bit mono sine wave as a canonical wav file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if length <= 0 || sampleRate == 0 {
				return errInvalidSineParams
			}

			a.logger.Info("generating sine wav",
				zap.Float64("seconds", length),
				zap.Float64("hz", frequency),
				zap.String("output", output))

			raw := wavbytes.Encode(wavbytes.Header{
				ChannelCount:  1,
				SampleRate:    sampleRate,
				BitsPerSample: 16,
			}, sineSamples(frequency, length, sampleRate))

			if err := source.WriteFile(output, raw); err != nil {
				return fmt.Errorf("error creating %s: %w", output, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "output.wav", "filename to write to")
	cmd.Flags().Float64Var(&frequency, "frequency", 440, "frequency in hertz to generate")
	cmd.Flags().Float64Var(&length, "length", 5, "length in seconds of output file")
	cmd.Flags().Uint32Var(&sampleRate, "rate", 48000, "sample rate in hertz")

	return cmd
}

// sineSamples returns little-endian 16-bit PCM for a full scale sine.
func sineSamples(frequency, length float64, sampleRate uint32) []byte {
	numSamples := int(float64(sampleRate) * length)
	data := make([]byte, numSamples*2)

	for i := range numSamples {
		fv := math.Sin(float64(i) / float64(sampleRate) * frequency * 2 * math.Pi)
		binary.LittleEndian.PutUint16(data[i*2:], uint16(int16(math.Round(fv*math.MaxInt16))))
	}

	return data
}
