// Package config loads the syserr CLI settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned for unreadable, malformed or invalid files.
var ErrInvalidConfig = errors.New("invalid configuration")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the CLI settings. Zero-valued fields in a file keep their
// defaults.
type Config struct {
	Format   string `toml:"format"`
	Language string `toml:"language"`
	LogLevel string `toml:"log_level"`
	Color    string `toml:"color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:   FormatText,
		LogLevel: "warn",
		Color:    ColorAuto,
	}
}

// DefaultPath returns the per-user settings file location, e.g.
// $XDG_CONFIG_HOME/syserr/config.toml. Returns "" when no user
// configuration directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "syserr", "config.toml")
}

// Load reads the settings file at path over the defaults.
// A missing file is only an error when explicit is true.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%w: reading %s: %w", ErrInvalidConfig, path, err)
	}

	if err := cfg.decode(data); err != nil {
		return Default(), fmt.Errorf("%w: parsing %s: %w", ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	var file Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return err
	}

	if file.Format != "" {
		c.Format = file.Format
	}
	if file.Language != "" {
		c.Language = file.Language
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	if file.Color != "" {
		c.Color = file.Color
	}
	return nil
}

// Validate checks that every setting holds a supported value.
// Language tags are validated where they are mapped, in package locale.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: unknown color mode %q", ErrInvalidConfig, c.Color)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelWarn, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, name)
	}
	return level, nil
}
