package wavbytes

import "time"

// Options configures Convert.
type Options struct {
	Formatter
	// Strict runs Validate before parsing.
	Strict bool
}

// Result is the outcome of converting one input. It is a value owned by the
// caller; nothing in this package keeps a reference to it.
type Result struct {
	Header    Header
	Output    Output
	Mode      Mode
	SampleLen int

	// HexDelimiter is the separator used in Output.Hex.
	HexDelimiter string
}

// Duration returns the play time of the converted sample data.
func (r *Result) Duration() time.Duration {
	if r == nil {
		return 0
	}

	return r.Header.Duration(r.SampleLen)
}

// Convert parses raw and renders its sample data. On error no result is
// returned.
func Convert(raw []byte, opts Options) (*Result, error) {
	if opts.Strict {
		if err := Validate(raw); err != nil {
			return nil, err
		}
	}

	h, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	out, err := opts.Format(raw, h.DataOffset)
	if err != nil {
		return nil, err
	}

	return &Result{
		Header:       *h,
		Output:       out,
		Mode:         opts.Mode,
		SampleLen:    len(raw) - h.DataOffset,
		HexDelimiter: opts.hexDelimiter(),
	}, nil
}
