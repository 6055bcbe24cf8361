// Package config loads the application configuration: presentation and
// ambient knobs only, never lobby settings (those live in the engine and
// travel via share codes).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config is the on-disk application configuration.
type Config struct {
	App     AppConfig     `toml:"app"`
	Display DisplayConfig `toml:"display"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level" validate:"oneof=debug info warn error"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	// Color is one of auto, always, never. Auto follows TTY detection.
	Color string `toml:"color" validate:"oneof=auto always never"`

	// Attribution controls whether the footer line is kept on composed posts.
	Attribution bool `toml:"attribution"`

	// DefaultRegion pre-selects the region setting for new sessions.
	DefaultRegion string `toml:"default_region"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			LogLevel: "warn",
		},
		Display: DisplayConfig{
			Color:       "auto",
			Attribution: true,
		},
	}
}

// configPath returns the configuration file location, honoring the
// LOBBYSCRIBE_CONFIG override.
func configPath() (string, error) {
	if p := os.Getenv("LOBBYSCRIBE_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".lobbyscribe", "config.toml"), nil
}

// Load reads the configuration from disk, falling back to defaults when the
// file does not exist. A `.env` file in the working directory is loaded
// first so LOBBYSCRIBE_* variables can be kept alongside a project.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates the configuration at an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
