package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/five82/roster/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging points the default slog logger at the configured log file.
// The terminal belongs to the TUI, so nothing is written to stdout. The
// file is truncated on start; the activity view shows this session only.
// On failure logs are discarded and the returned closer is still usable.
func setupLogging(cfg config.Config) (io.Closer, error) {
	discard := func() {
		slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	}

	if cfg.LogFile == "" {
		discard()
		return nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		discard()
		return nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		discard()
		return nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel,
		AddSource: cfg.LogLevel <= slog.LevelDebug,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, opts)))
	return f, nil
}
