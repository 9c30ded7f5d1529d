// Package wavbytes decodes the canonical 44-byte RIFF/WAVE header and renders
// the sample data that follows it as hexadecimal and decimal listings.
//
// Parsing is offset based: Parse reads the channel count, sample rate, byte
// rate and bit depth from fixed positions and never looks at the RIFF, WAVE,
// fmt or data tags. Callers that want tag checks run Validate first, or set
// Options.Strict when using Convert.
//
// Sample data can be rendered in two representations:
//
//   - ModeByte: each byte as two uppercase hex digits ("00-FF-10") and as an
//     unsigned decimal ("0,255,16").
//   - ModeWord: each byte widened to an integer and rendered without padding
//     ("0,FF,10" and "0,255,16").
//
// Every function in this package is a pure function of its arguments and is
// safe for concurrent use.
package wavbytes
