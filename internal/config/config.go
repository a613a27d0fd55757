// Package config loads user preferences for the todo TUI.
//
// Lookup order: built-in defaults, then the YAML file, then TADA_*
// environment variables. Command-line flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/ui"
)

const (
	dirName  = "tada"
	fileName = "config.yaml"

	EnvTheme   = "TADA_THEME"
	EnvLogFile = "TADA_LOG_FILE"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the preferences read at startup.
type Config struct {
	Theme       string `yaml:"theme"`
	Filter      string `yaml:"filter"`
	Placeholder string `yaml:"placeholder"`
	CharLimit   int    `yaml:"char_limit"`
	LogFile     string `yaml:"log_file"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:       "classic",
		Filter:      "all",
		Placeholder: "What needs to be done?",
		CharLimit:   200,
		LogLevel:    "info",
	}
}

// DefaultPath is $XDG_CONFIG_HOME/tada/config.yaml or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// Load reads path on top of Default and applies environment overrides.
// A missing file is not an error. An empty path means DefaultPath; when no
// config directory can be resolved the file step is skipped.
//
// The result is not validated: callers merge flags first, then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.LogFile = v
	}
	return cfg, nil
}

// Validate rejects values the UI cannot use.
func (c Config) Validate() error {
	if _, err := ui.ParseTheme(c.Theme); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := model.ParseFilter(c.Filter); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.CharLimit < 0 {
		return fmt.Errorf("%w: char_limit must be >= 0, got %d", ErrInvalid, c.CharLimit)
	}
	return nil
}

// Level parses LogLevel (debug, info, warn, error).
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
