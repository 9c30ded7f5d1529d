package config

// Config is the wavbytes configuration file.
type Config struct {
	Format FormatConfig `toml:"format"`
	Export ExportConfig `toml:"export"`
	Parse  ParseConfig  `toml:"parse"`
	Log    LogConfig    `toml:"log"`
}

// FormatConfig controls how sample data is rendered.
type FormatConfig struct {
	// Mode is "byte" or "word".
	Mode string `toml:"mode"`
	// HexDelimiter overrides the hex separator; empty keeps the mode default.
	HexDelimiter string `toml:"hex_delimiter"`
}

// ExportConfig controls CSV export.
type ExportConfig struct {
	// Target selects which listing is written: "hex" or "decimal".
	Target string `toml:"target"`
	// CSVDelimiter replaces the byte mode hex delimiter in exported CSV.
	CSVDelimiter string `toml:"csv_delimiter"`
}

// ParseConfig controls header parsing.
type ParseConfig struct {
	// Strict rejects input whose RIFF/WAVE/fmt/data tags are not at their
	// canonical offsets.
	Strict bool `toml:"strict"`
}

// LogConfig sets the logger verbosity.
type LogConfig struct {
	Level string `toml:"level"`
}
