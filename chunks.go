package wavbytes

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// riffPreambleSize covers the RIFF tag, the RIFF size and the form type.
const riffPreambleSize = 12

const (
	offFmtID   = riffPreambleSize
	offFmtSize = offFmtID + 4
	offDataID  = 36
)

// ChunkInfo describes one RIFF sub-chunk.
type ChunkInfo struct {
	ID string
	// Size is the payload size, padded to an even number of bytes.
	Size int
	// Offset is the position of the chunk's ID in the input.
	Offset int
}

// Validate checks the RIFF, WAVE, fmt and data tags of a canonical wav
// header. The fmt and data tags must sit at their canonical offsets so that
// sample data starts at HeaderSize. Parse never calls it.
func Validate(raw []byte) error {
	if len(raw) < HeaderSize {
		return fmt.Errorf("%w: got %d bytes", ErrTruncatedHeader, len(raw))
	}

	if _, err := openRIFF(raw); err != nil {
		return err
	}

	if id := [4]byte(raw[offFmtID : offFmtID+4]); id != riff.FmtID {
		return fmt.Errorf("%w: found %q at offset %d", ErrMissingFmtChunk, id[:], offFmtID)
	}

	if size := binary.LittleEndian.Uint32(raw[offFmtSize:]); size != fmtChunkSize {
		return fmt.Errorf("%w: fmt chunk is %d bytes, want %d", ErrMissingDataChunk, size, fmtChunkSize)
	}

	if id := [4]byte(raw[offDataID : offDataID+4]); id != riff.DataFormatID {
		return fmt.Errorf("%w: found %q at offset %d", ErrMissingDataChunk, id[:], offDataID)
	}

	return nil
}

// Chunks lists the sub-chunks of a RIFF/WAVE input in file order. Walking
// stops at the end of the input; a truncated final chunk is still reported.
func Chunks(raw []byte) ([]ChunkInfo, error) {
	parser, err := openRIFF(raw)
	if err != nil {
		return nil, err
	}

	var (
		chunks []ChunkInfo
		offset = riffPreambleSize
	)

	for {
		chunk, err := parser.NextChunk()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}

			return chunks, fmt.Errorf("failed to read chunk at offset %d: %w", offset, err)
		}

		chunks = append(chunks, ChunkInfo{
			ID:     string(chunk.ID[:]),
			Size:   chunk.Size,
			Offset: offset,
		})

		chunk.Drain()

		offset += 8 + chunk.Size
	}

	return chunks, nil
}

// openRIFF reads the RIFF preamble and returns a parser positioned at the
// first sub-chunk.
func openRIFF(raw []byte) (*riff.Parser, error) {
	r := bytes.NewReader(raw)
	parser := riff.New(r)

	id, size, err := parser.IDnSize()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotRIFF, err)
	}

	if id != riff.RiffID {
		return nil, fmt.Errorf("%w: found %q", ErrNotRIFF, id[:])
	}

	parser.ID = id
	parser.Size = size

	err = binary.Read(r, binary.BigEndian, &parser.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWAVE, err)
	}

	if parser.Format != riff.WavFormatID {
		return nil, fmt.Errorf("%w: found %q", ErrNotWAVE, parser.Format[:])
	}

	return parser, nil
}
