package config

import (
	"fmt"
	"strings"

	"github.com/cwbudde/wavbytes"
	"github.com/cwbudde/wavbytes/internal/logging"
)

// hexDigits may not appear in a hex delimiter, or the listing could not be
// split back into values.
const hexDigits = "0123456789ABCDEFabcdef"

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := wavbytes.ParseMode(c.Format.Mode); err != nil {
		return fmt.Errorf("invalid format.mode: %w", err)
	}

	if strings.ContainsAny(c.Format.HexDelimiter, hexDigits) {
		return fmt.Errorf("invalid format.hex_delimiter: %q contains a hex digit", c.Format.HexDelimiter)
	}

	switch c.Export.Target {
	case TargetHex, TargetDecimal:
	default:
		return fmt.Errorf("invalid export.target: %q (use %q or %q)", c.Export.Target, TargetHex, TargetDecimal)
	}

	if c.Export.CSVDelimiter == "" {
		return fmt.Errorf("invalid export.csv_delimiter: empty")
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}

	return nil
}
