package wavbytes

import (
	"fmt"
	"log"
)

func ExampleParse() {
	raw := Encode(Header{ChannelCount: 2, SampleRate: 44100, BitsPerSample: 16}, nil)

	h, err := Parse(raw)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range h.Fields() {
		fmt.Printf("%s: %s\n", f.Name, f.Value)
	}
	// Output:
	// Sample Rate: 44100
	// Byte Rate: 176400
	// Bits Per Sample: 16
	// Channels: 2
}

func ExampleFormatter_Format() {
	raw := Encode(Header{ChannelCount: 1, SampleRate: 8000, BitsPerSample: 8}, []byte{0x00, 0xFF, 0x10})

	byteOut, err := Formatter{Mode: ModeByte}.Format(raw, HeaderSize)
	if err != nil {
		log.Fatal(err)
	}

	wordOut, err := Formatter{Mode: ModeWord}.Format(raw, HeaderSize)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(byteOut.Hex, byteOut.Decimal)
	fmt.Println(ReplaceDelimiter(byteOut.Hex, "-", ","))
	fmt.Println(wordOut.Hex, wordOut.Decimal)
	// Output:
	// 00-FF-10 0,255,16
	// 00,FF,10
	// 0,FF,10 0,255,16
}
