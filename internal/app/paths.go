package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName   = "fittrack"
	dataFileName = "fittrack.db"
)

// DefaultDataPath is where the state database lives unless overridden by
// flag or config.
func DefaultDataPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dataFileName), nil
}

// DefaultConfigPath is where the optional TOML config is looked up.
func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, "config.toml"), nil
}

// EnsureDataDir creates the parent directory of the state database.
func EnsureDataDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}
