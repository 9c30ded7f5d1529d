package wavbytes

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/go-audio/audio"
)

// HeaderSize is the length of the canonical PCM wav header. Sample data
// always starts at this offset.
const HeaderSize = 44

const (
	offRIFFSize      = 4
	offAudioFormat   = 20
	offChannelCount  = 22
	offSampleRate    = 24
	offByteRate      = 28
	offBlockAlign    = 32
	offBitsPerSample = 34
	offDataSize      = 40
)

// Header holds the fields decoded from the canonical 44-byte header.
type Header struct {
	ChannelCount  uint16
	SampleRate    uint32
	ByteRate      uint32
	BitsPerSample uint16

	// RIFFSize, AudioFormat, BlockAlign and DataSize are read from their
	// canonical positions but never checked.
	RIFFSize    uint32
	AudioFormat uint16
	BlockAlign  uint16
	DataSize    uint32

	// DataOffset is where the sample data begins.
	DataOffset int
}

// Field is one labelled entry of a header summary.
type Field struct {
	Name  string
	Value string
}

// Parse decodes the header fields at their fixed little-endian offsets.
// Any input of at least HeaderSize bytes is accepted, including data that
// isn't a wav file at all.
func Parse(raw []byte) (*Header, error) {
	if len(raw) < HeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrTruncatedHeader, len(raw))
	}

	le := binary.LittleEndian

	return &Header{
		ChannelCount:  le.Uint16(raw[offChannelCount : offChannelCount+2]),
		SampleRate:    le.Uint32(raw[offSampleRate : offSampleRate+4]),
		ByteRate:      le.Uint32(raw[offByteRate : offByteRate+4]),
		BitsPerSample: le.Uint16(raw[offBitsPerSample : offBitsPerSample+2]),
		RIFFSize:      le.Uint32(raw[offRIFFSize : offRIFFSize+4]),
		AudioFormat:   le.Uint16(raw[offAudioFormat : offAudioFormat+2]),
		BlockAlign:    le.Uint16(raw[offBlockAlign : offBlockAlign+2]),
		DataSize:      le.Uint32(raw[offDataSize : offDataSize+4]),
		DataOffset:    HeaderSize,
	}, nil
}

// Fields returns the header summary shown to users, in display order.
func (h *Header) Fields() []Field {
	if h == nil {
		return nil
	}

	return []Field{
		{Name: "Sample Rate", Value: strconv.FormatUint(uint64(h.SampleRate), 10)},
		{Name: "Byte Rate", Value: strconv.FormatUint(uint64(h.ByteRate), 10)},
		{Name: "Bits Per Sample", Value: strconv.FormatUint(uint64(h.BitsPerSample), 10)},
		{Name: "Channels", Value: strconv.FormatUint(uint64(h.ChannelCount), 10)},
	}
}

// Duration returns the play time of sampleLen bytes of sample data at the
// header's byte rate. A zero byte rate yields zero.
func (h *Header) Duration(sampleLen int) time.Duration {
	if h == nil {
		return 0
	}

	return durationFromBytes(sampleLen, h.ByteRate)
}

// Format returns the go-audio format described by the header.
func (h *Header) Format() *audio.Format {
	if h == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(h.ChannelCount),
		SampleRate:  int(h.SampleRate),
	}
}

// String implements the Stringer interface.
func (h *Header) String() string {
	if h == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%d Hz, %d bytes/s, %d bit, %d ch", h.SampleRate, h.ByteRate, h.BitsPerSample, h.ChannelCount)
}
