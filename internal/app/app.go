package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/records"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/ui"
)

// Options configure the roster application. Non-zero fields override the
// config file.
type Options struct {
	ConfigPath  string
	RecordsPath string
	PrefsPath   string // empty uses default ~/.config/roster/prefs.toml
	ReloadEvery int    // seconds; zero uses the configured interval
}

// Run boots the roster TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.RecordsPath != "" {
		cfg.RecordsPath, err = config.ResolveRecordsPath(opts.RecordsPath)
		if err != nil {
			return fmt.Errorf("records path: %w", err)
		}
	}
	if opts.ReloadEvery > 0 {
		cfg.ReloadInterval = time.Duration(opts.ReloadEvery) * time.Second
	}

	closer, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roster: logging disabled: %v\n", err)
	}
	defer closer.Close()

	logger := slog.Default().With("component", "app")

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("preferences unreadable, using defaults", "error", err)
	}

	source := records.NewSource(cfg.RecordsPath)
	store := &state.Store{}

	// Populate the store before the UI starts so the first frame has rows.
	if err := reload(ctx, store, source); err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	logger.Info("roster started",
		"source", source.Name(),
		"records", len(store.Snapshot().Records),
		"reload_interval", cfg.ReloadInterval.String(),
	)

	StartReloader(ctx, store, source, cfg.ReloadInterval)

	uiOpts := ui.Options{
		Context:          ctx,
		Store:            store,
		SourceName:       source.Name(),
		LogPath:          cfg.LogFile,
		ResetPageOnQuery: cfg.ResetPageOnQuery,
		RefreshTick:      time.Second,
		Prefs:            userPrefs,
		PrefsPath:        opts.PrefsPath,
	}
	if err := ui.Run(uiOpts); err != nil {
		return err
	}
	logger.Info("roster stopped")
	return nil
}
