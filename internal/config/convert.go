package config

import "github.com/cwbudde/wavbytes"

// Options returns the conversion options described by the configuration.
func (c *Config) Options() (wavbytes.Options, error) {
	mode, err := wavbytes.ParseMode(c.Format.Mode)
	if err != nil {
		return wavbytes.Options{}, err
	}

	return wavbytes.Options{
		Formatter: wavbytes.Formatter{
			Mode:         mode,
			HexDelimiter: c.Format.HexDelimiter,
		},
		Strict: c.Parse.Strict,
	}, nil
}
