package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds roster's runtime settings.
type Config struct {
	// RecordsPath is the patient file to display. Empty means the built-in
	// sample roster.
	RecordsPath      string
	LogFile          string
	LogLevel         slog.Level
	ResetPageOnQuery bool
	ReloadInterval   time.Duration
}

const (
	defaultConfigPath     = "~/.config/roster/config.toml"
	defaultLogFile        = "~/.local/state/roster/roster.log"
	defaultReloadInterval = 2 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogFile:          mustExpand(defaultLogFile),
		LogLevel:         slog.LevelInfo,
		ResetPageOnQuery: true,
		ReloadInterval:   defaultReloadInterval,
	}
}

// Load locates and parses the roster config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		RecordsPath      string `toml:"records_path"`
		LogFile          string `toml:"log_file"`
		LogLevel         string `toml:"log_level"`
		ResetPageOnQuery *bool  `toml:"reset_page_on_query"`
		ReloadSeconds    *int   `toml:"reload_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if p := strings.TrimSpace(raw.RecordsPath); p != "" {
		cfg.RecordsPath, err = expandPath(p)
		if err != nil {
			return Config{}, fmt.Errorf("records_path: %w", err)
		}
	}

	if p := strings.TrimSpace(raw.LogFile); p != "" {
		cfg.LogFile = mustExpand(p)
	}

	if lvl := strings.TrimSpace(raw.LogLevel); lvl != "" {
		level, err := ParseLevel(lvl)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}

	if raw.ResetPageOnQuery != nil {
		cfg.ResetPageOnQuery = *raw.ResetPageOnQuery
	}

	if raw.ReloadSeconds != nil {
		if *raw.ReloadSeconds < 0 {
			return Config{}, fmt.Errorf("reload_seconds must not be negative, got %d", *raw.ReloadSeconds)
		}
		// Zero disables the fallback ticker; file events still trigger reloads.
		cfg.ReloadInterval = time.Duration(*raw.ReloadSeconds) * time.Second
	}

	return cfg, nil
}

// ParseLevel maps debug, info, warn or error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", s, err)
	}
	return level, nil
}

// ResolveRecordsPath expands a path given on the command line.
func ResolveRecordsPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", nil
	}
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
