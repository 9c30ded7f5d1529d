package config

// Export targets name the listing written to CSV.
const (
	TargetHex     = "hex"
	TargetDecimal = "decimal"
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Format: FormatConfig{
			Mode:         "byte",
			HexDelimiter: "",
		},
		Export: ExportConfig{
			Target:       TargetHex,
			CSVDelimiter: ",",
		},
		Parse: ParseConfig{
			Strict: false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
