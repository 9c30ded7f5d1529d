package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrConfigNotFound is returned when an explicitly given config file is missing.
var ErrConfigNotFound = errors.New("config not found")

// GetConfigPath returns the default location of the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	return filepath.Join(configDir, "wavbytes", "config.toml"), nil
}

// Load reads the configuration at path on top of the defaults. With an empty
// path the default location is used, and a missing file there simply yields
// the defaults. A missing explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""

	if !explicit {
		var err error

		path, err = GetConfigPath()
		if err != nil {
			return nil, err
		}
	}

	config := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}

		return config, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	meta, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in config file %s: %v", path, undecoded)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}
