package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, FormatText, cfg.Format)
	require.Equal(t, ColorAuto, cfg.Color)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Empty(t, cfg.Language)
	require.NoError(t, cfg.Validate())
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("AppData", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")

	path := DefaultPath()
	require.Equal(t, "config.toml", filepath.Base(path))
	require.Equal(t, "syserr", filepath.Base(filepath.Dir(path)))
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
format    = "json"
language  = "de-DE"
log_level = "debug"
color     = "never"
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.Equal(t, Config{
		Format:   FormatJSON,
		Language: "de-DE",
		LogLevel: "debug",
		Color:    ColorNever,
	}, cfg)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `language = "fr"`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.Equal(t, "fr", cfg.Language)
	require.Equal(t, FormatText, cfg.Format)
	require.Equal(t, ColorAuto, cfg.Color)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("", true)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")

	cfg, err := Load(missing, false)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = Load(missing, true)
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", `format = `},
		{"unknown key", `colour = "never"`},
		{"wrong type", `format = 3`},
		{"unknown format", `format = "yaml"`},
		{"unknown color", `color = "sometimes"`},
		{"unknown log level", `log_level = "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content), false)
			require.ErrorIs(t, err, ErrInvalidConfig)
			require.Equal(t, Default(), cfg)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, level)
		})
	}

	_, err := ParseLevel("verbose")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
