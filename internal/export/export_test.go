package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/wavbytes"
	"github.com/cwbudde/wavbytes/internal/config"
)

func convert(t *testing.T, mode wavbytes.Mode, sample ...byte) *wavbytes.Result {
	t.Helper()

	raw := wavbytes.Encode(wavbytes.Header{ChannelCount: 1, SampleRate: 8000, BitsPerSample: 8}, sample)

	res, err := wavbytes.Convert(raw, wavbytes.Options{Formatter: wavbytes.Formatter{Mode: mode}})
	require.NoError(t, err)

	return res
}

func TestCSV(t *testing.T) {
	byteRes := convert(t, wavbytes.ModeByte, 0x00, 0xFF, 0x10)
	wordRes := convert(t, wavbytes.ModeWord, 0x00, 0xFF, 0x10)

	tests := []struct {
		name   string
		res    *wavbytes.Result
		target string
		want   string
	}{
		{"byte hex", byteRes, config.TargetHex, "00,FF,10"},
		{"byte decimal", byteRes, config.TargetDecimal, "0,255,16"},
		{"word hex", wordRes, config.TargetHex, "0,FF,10"},
		{"word decimal", wordRes, config.TargetDecimal, "0,255,16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CSV(tt.res, tt.target, ",")
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := CSV(byteRes, "binary", ",")
	require.ErrorIs(t, err, errUnknownTarget)
}

func TestCSVLeavesResultUntouched(t *testing.T) {
	res := convert(t, wavbytes.ModeByte, 0x01, 0x02)

	_, err := CSV(res, config.TargetHex, ",")
	require.NoError(t, err)
	require.Equal(t, "01-02", res.Output.Hex)
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, WriteCSV(path, convert(t, wavbytes.ModeByte, 0x0A, 0x0B), config.TargetHex, ";"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0A;0B", string(data))
}

func TestAIFFPath(t *testing.T) {
	require.Equal(t, "/tmp/kick.aif", AIFFPath("/tmp/kick.wav"))
	require.Equal(t, "noext.aif", AIFFPath("noext"))
}

func TestWriteAIFF(t *testing.T) {
	for _, bits := range []uint16{8, 16} {
		h := &wavbytes.Header{ChannelCount: 2, SampleRate: 44100, BitsPerSample: bits}

		path := filepath.Join(t.TempDir(), "out.aif")
		f, err := os.Create(path)
		require.NoError(t, err)

		require.NoError(t, WriteAIFF(f, h, []byte{0x00, 0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70}))
		require.NoError(t, f.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Greater(t, len(data), 12)
		require.Equal(t, "FORM", string(data[0:4]))
		require.Equal(t, "AIFF", string(data[8:12]))
	}
}

func TestWriteAIFFUnsupportedDepth(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.aif"))
	require.NoError(t, err)
	defer f.Close()

	err = WriteAIFF(f, &wavbytes.Header{ChannelCount: 1, SampleRate: 8000, BitsPerSample: 64}, []byte{1})
	require.ErrorIs(t, err, wavbytes.ErrUnsupportedBitDepth)
}
