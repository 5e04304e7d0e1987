// Package config loads the app configuration file. Everything has a
// working default; the file only exists to relocate data.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all app configuration.
type Config struct {
	Data DataConfig `toml:"data"`
}

// DataConfig locates the app's inputs and storage.
type DataConfig struct {
	// Manifest is the path to the task manifest JSON.
	Manifest string `toml:"manifest"`
	// DB is the path to the SQLite progress database.
	DB string `toml:"db"`
}

// DefaultConfig returns the configuration used when no file exists.
// Zero-value paths mean "resolve the XDG default at open time".
func DefaultConfig() Config {
	return Config{}
}

// DefaultPath resolves the config file location:
// $XDG_CONFIG_HOME/eyebright/config.toml, falling back to
// ~/.config/eyebright/config.toml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "eyebright", "config.toml"), nil
}

// Load reads the config file at path over the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultManifestPath resolves the manifest location when the config
// doesn't set one: $XDG_DATA_HOME/eyebright/tasks.json, falling back to
// ~/.local/share/eyebright/tasks.json.
func DefaultManifestPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "eyebright", "tasks.json"), nil
}
