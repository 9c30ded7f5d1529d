package wavbytes

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/audio"
)

// PCMBuffer decodes little-endian PCM samples using the header's bit depth
// and channel layout. 8-bit samples are unsigned, all other depths are
// signed. A trailing partial sample is dropped.
func PCMBuffer(h *Header, sample []byte) (*audio.IntBuffer, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: nil header", ErrUnsupportedBitDepth)
	}

	decode, err := sampleDecodeFunc(int(h.BitsPerSample))
	if err != nil {
		return nil, err
	}

	size := bytesPerSample(int(h.BitsPerSample))
	n := len(sample) / size

	buf := &audio.IntBuffer{
		Format:         h.Format(),
		Data:           make([]int, n),
		SourceBitDepth: int(h.BitsPerSample),
	}

	for i := range n {
		buf.Data[i] = decode(sample[i*size : (i+1)*size])
	}

	return buf, nil
}

// sampleDecodeFunc returns a function converting one stored sample into an
// int, based on the amount of bits used per sample.
func sampleDecodeFunc(bitsPerSample int) (func([]byte) int, error) {
	switch {
	case bitsPerSample == 8:
		return func(b []byte) int {
			return int(b[0])
		}, nil
	case bitsPerSample > 8 && bitsPerSample <= 16:
		return func(b []byte) int {
			return int(int16(binary.LittleEndian.Uint16(b)))
		}, nil
	case bitsPerSample > 16 && bitsPerSample <= 24:
		return func(b []byte) int {
			return int(audio.Int24LETo32(b))
		}, nil
	case bitsPerSample > 24 && bitsPerSample <= 32:
		return func(b []byte) int {
			return int(int32(binary.LittleEndian.Uint32(b)))
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitsPerSample)
	}
}
