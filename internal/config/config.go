package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the optional TOML configuration file. All fields have
// working defaults; a missing file is not an error.
type Config struct {
	// DataPath overrides the default state database location.
	DataPath string `toml:"data_path"`
	// LogLevel is a logrus level name (panic..trace). Default "warn".
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{LogLevel: "warn"}
}

// Load reads the TOML file at path, falling back to defaults when the
// file does not exist. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	return cfg, nil
}
