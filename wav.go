package wavbytes

import (
	"errors"
	"time"
)

var (
	// ErrTruncatedHeader is returned when the input is shorter than the
	// canonical header.
	ErrTruncatedHeader = errors.New("input shorter than the 44 byte wav header")
	// ErrDataOffset is returned when the sample data offset lies outside the input.
	ErrDataOffset = errors.New("data offset out of range")
	// ErrUnknownMode is returned when a representation mode name is not recognized.
	ErrUnknownMode = errors.New("unknown representation mode")
	// ErrUnsupportedBitDepth is returned when PCM samples can't be decoded
	// at the header's bit depth.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

	// ErrNotRIFF indicates the input doesn't start with a RIFF tag.
	ErrNotRIFF = errors.New("RIFF tag not found")
	// ErrNotWAVE indicates the RIFF form type isn't WAVE.
	ErrNotWAVE = errors.New("WAVE tag not found")
	// ErrMissingFmtChunk indicates the first sub-chunk isn't "fmt ".
	ErrMissingFmtChunk = errors.New("fmt sub-chunk not found")
	// ErrMissingDataChunk indicates the sub-chunk after fmt isn't "data".
	ErrMissingDataChunk = errors.New("data sub-chunk not found")
)

// durationFromBytes returns the play time of n sample bytes at byteRate.
func durationFromBytes(n int, byteRate uint32) time.Duration {
	if byteRate == 0 || n <= 0 {
		return 0
	}

	return time.Duration(int64(n) * int64(time.Second) / int64(byteRate))
}

func bytesPerSample(bitDepth int) int {
	return (bitDepth-1)/8 + 1
}
