package wavbytes

import (
	"encoding/binary"
)

const (
	fmtChunkSize  = 16
	wavFormatPCM  = 1
	riffSizeExtra = HeaderSize - 8
)

// Encode builds a canonical PCM wav file: a 44-byte header describing h
// followed by sample. ByteRate and BlockAlign are derived from the channel
// count, sample rate and bit depth; h.DataOffset, h.RIFFSize and h.DataSize
// are ignored.
func Encode(h Header, sample []byte) []byte {
	out := make([]byte, HeaderSize, HeaderSize+len(sample))
	le := binary.LittleEndian

	blockAlign := uint16(bytesPerSample(int(h.BitsPerSample))) * h.ChannelCount

	audioFormat := h.AudioFormat
	if audioFormat == 0 {
		audioFormat = wavFormatPCM
	}

	copy(out[0:4], "RIFF")
	le.PutUint32(out[offRIFFSize:], uint32(riffSizeExtra+len(sample)))
	copy(out[8:12], "WAVE")
	copy(out[12:16], "fmt ")
	le.PutUint32(out[16:20], fmtChunkSize)
	le.PutUint16(out[offAudioFormat:], audioFormat)
	le.PutUint16(out[offChannelCount:], h.ChannelCount)
	le.PutUint32(out[offSampleRate:], h.SampleRate)
	le.PutUint32(out[offByteRate:], h.SampleRate*uint32(blockAlign))
	le.PutUint16(out[offBlockAlign:], blockAlign)
	le.PutUint16(out[offBitsPerSample:], h.BitsPerSample)
	copy(out[36:40], "data")
	le.PutUint32(out[offDataSize:], uint32(len(sample)))

	return append(out, sample...)
}
