package wavbytes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
)

// Mode selects how sample data is represented.
type Mode int

const (
	// ModeByte renders each sample byte on its own: fixed two-digit hex and
	// unsigned decimal.
	ModeByte Mode = iota
	// ModeWord widens each sample byte to an integer and renders it without
	// padding.
	ModeWord
)

const (
	// DefaultByteHexDelimiter joins byte mode hex groups.
	DefaultByteHexDelimiter = "-"
	// ListDelimiter joins decimal values and word mode hex values.
	ListDelimiter = ","
)

const hexDigits = "0123456789ABCDEF"

// ParseMode maps "byte" or "word" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "byte", "":
		return ModeByte, nil
	case "word":
		return ModeWord, nil
	default:
		return ModeByte, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// String returns the name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeByte:
		return "byte"
	case ModeWord:
		return "word"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Output holds the two listings derived from the same sample data.
type Output struct {
	Hex     string
	Decimal string
}

// Formatter renders sample data. The zero value renders byte mode with the
// default delimiters.
type Formatter struct {
	Mode Mode
	// HexDelimiter overrides the separator between hex values. When empty,
	// byte mode uses "-" and word mode uses ",".
	HexDelimiter string
}

func (f Formatter) hexDelimiter() string {
	if f.HexDelimiter != "" {
		return f.HexDelimiter
	}

	if f.Mode == ModeWord {
		return ListDelimiter
	}

	return DefaultByteHexDelimiter
}

// Format renders raw[dataOffset:] as hex and decimal listings. Values keep
// file order. Empty sample data yields two empty strings.
func (f Formatter) Format(raw []byte, dataOffset int) (Output, error) {
	if dataOffset < 0 || dataOffset > len(raw) {
		return Output{}, fmt.Errorf("%w: offset %d, input %d bytes", ErrDataOffset, dataOffset, len(raw))
	}

	sample := raw[dataOffset:]
	if len(sample) == 0 {
		return Output{}, nil
	}

	switch f.Mode {
	case ModeByte:
		return Output{
			Hex:     byteHex(sample, f.hexDelimiter()),
			Decimal: byteDecimal(sample),
		}, nil
	case ModeWord:
		buf := Words(sample)

		return Output{
			Hex:     wordList(buf, f.hexDelimiter(), 16),
			Decimal: wordList(buf, ListDelimiter, 10),
		}, nil
	default:
		return Output{}, fmt.Errorf("%w: %d", ErrUnknownMode, int(f.Mode))
	}
}

// Words widens every sample byte into its own integer, keeping its value.
func Words(sample []byte) *audio.IntBuffer {
	buf := &audio.IntBuffer{
		Data:           make([]int, len(sample)),
		SourceBitDepth: 32,
	}
	for i, b := range sample {
		buf.Data[i] = int(b)
	}

	return buf
}

// ReplaceDelimiter swaps every occurrence of from with to.
func ReplaceDelimiter(s, from, to string) string {
	if from == "" || from == to {
		return s
	}

	return strings.ReplaceAll(s, from, to)
}

func byteHex(sample []byte, delim string) string {
	var sb strings.Builder
	sb.Grow(len(sample)*(2+len(delim)) - len(delim))

	for i, b := range sample {
		if i > 0 {
			sb.WriteString(delim)
		}

		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0F])
	}

	return sb.String()
}

func byteDecimal(sample []byte) string {
	out := make([]byte, 0, len(sample)*4)

	for i, b := range sample {
		if i > 0 {
			out = append(out, ListDelimiter...)
		}

		out = strconv.AppendUint(out, uint64(b), 10)
	}

	return string(out)
}

func wordList(buf *audio.IntBuffer, delim string, base int) string {
	out := make([]byte, 0, len(buf.Data)*4)

	for i, v := range buf.Data {
		if i > 0 {
			out = append(out, delim...)
		}

		start := len(out)
		// values come from single bytes, so they are never negative
		out = strconv.AppendUint(out, uint64(uint32(v)), base)

		if base == 16 {
			upperHex(out[start:])
		}
	}

	return string(out)
}

func upperHex(digits []byte) {
	for i, c := range digits {
		if c >= 'a' && c <= 'f' {
			digits[i] = c - 'a' + 'A'
		}
	}
}
