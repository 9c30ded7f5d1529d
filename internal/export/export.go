// Package export writes conversion results to CSV and decoded samples to
// AIFF.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-audio/aiff"

	"github.com/cwbudde/wavbytes"
	"github.com/cwbudde/wavbytes/internal/config"
	"github.com/cwbudde/wavbytes/internal/source"
)

var errUnknownTarget = errors.New("unknown export target")

// CSV returns the listing selected by target. Byte mode hex has its
// delimiter replaced by csvDelim; every other listing is returned verbatim.
func CSV(res *wavbytes.Result, target, csvDelim string) (string, error) {
	if res == nil {
		return "", nil
	}

	switch target {
	case config.TargetHex:
		if res.Mode != wavbytes.ModeByte {
			return res.Output.Hex, nil
		}

		return wavbytes.ReplaceDelimiter(res.Output.Hex, res.HexDelimiter, csvDelim), nil
	case config.TargetDecimal:
		return res.Output.Decimal, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownTarget, target)
	}
}

// WriteCSV writes the listing selected by target to path.
func WriteCSV(path string, res *wavbytes.Result, target, csvDelim string) error {
	content, err := CSV(res, target, csvDelim)
	if err != nil {
		return err
	}

	return source.WriteText(path, content)
}

// AIFFPath returns src with its extension replaced by ".aif".
func AIFFPath(src string) string {
	return src[:len(src)-len(filepath.Ext(src))] + ".aif"
}

// WriteAIFF decodes sample as PCM described by h and encodes it as AIFF.
func WriteAIFF(w io.WriteSeeker, h *wavbytes.Header, sample []byte) error {
	buf, err := wavbytes.PCMBuffer(h, sample)
	if err != nil {
		return fmt.Errorf("failed to decode PCM data: %w", err)
	}

	bitDepth := (int(h.BitsPerSample) + 7) / 8 * 8

	if bitDepth == 8 {
		// AIFF stores 8-bit samples signed
		for i, v := range buf.Data {
			buf.Data[i] = v - 128
		}
	}

	encoder := aiff.NewEncoder(w, int(h.SampleRate), bitDepth, int(h.ChannelCount))

	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio buffer: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close aiff encoder: %w", err)
	}

	return nil
}
