package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/five82/roster/internal/records"
	"github.com/five82/roster/internal/state"
)

const (
	defaultReloadInterval = 2 * time.Second
	maxBackoff            = 30 * time.Second
	// Editors often write a file in several steps; wait for them to settle.
	settleDelay = 150 * time.Millisecond
)

// StartReloader keeps store in sync with the source's backing file. It
// watches the file's directory with fsnotify and also checks the file on a
// timer, which backs off exponentially while loads keep failing. Sources
// without a path never change and get no reloader. It returns immediately.
func StartReloader(ctx context.Context, store *state.Store, source records.Source, interval time.Duration) {
	path := source.Path()
	if path == "" {
		return
	}
	logger := slog.Default().With("component", "reloader")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("file watching unavailable, polling only", "error", err)
		watcher = nil
	} else if err := watcher.Add(filepath.Dir(path)); err != nil {
		logger.Warn("cannot watch records directory, polling only", "dir", filepath.Dir(path), "error", err)
		_ = watcher.Close()
		watcher = nil
	}
	if watcher == nil && interval <= 0 {
		interval = defaultReloadInterval
	}

	r := &reloader{
		store:    store,
		source:   source,
		path:     filepath.Clean(path),
		interval: interval,
		logger:   logger,
		stamp:    stampOf(path),
	}
	go r.run(ctx, watcher)
}

type reloader struct {
	store    *state.Store
	source   records.Source
	path     string
	interval time.Duration
	logger   *slog.Logger
	stamp    fileStamp
}

func (r *reloader) run(ctx context.Context, watcher *fsnotify.Watcher) {
	var events <-chan fsnotify.Event
	var errs <-chan error
	if watcher != nil {
		defer watcher.Close()
		events = watcher.Events
		errs = watcher.Errors
	}

	var poll <-chan time.Time
	pollTimer := r.newTimer(r.interval)
	if pollTimer != nil {
		defer pollTimer.Stop()
		poll = pollTimer.C
	}

	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if filepath.Clean(ev.Name) != r.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			r.logger.Debug("records file event", "op", ev.Op.String())
			settle.Reset(settleDelay)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			r.logger.Warn("file watcher error", "error", err)
		case <-settle.C:
			r.reloadNow(ctx)
		case <-poll:
			failures := r.store.Snapshot().ConsecutiveFailures
			if failures > 0 || r.changed() {
				r.reloadNow(ctx)
				failures = r.store.Snapshot().ConsecutiveFailures
			}
			pollTimer.Reset(calculateBackoff(failures, r.interval))
		}
	}
}

func (r *reloader) newTimer(d time.Duration) *time.Timer {
	if d <= 0 {
		return nil
	}
	return time.NewTimer(d)
}

func (r *reloader) changed() bool {
	return !stampOf(r.path).same(r.stamp)
}

func (r *reloader) reloadNow(ctx context.Context) {
	r.stamp = stampOf(r.path)
	if err := reload(ctx, r.store, r.source); err != nil {
		if ctx.Err() != nil {
			return
		}
		snap := r.store.Snapshot()
		r.logger.Warn("records reload failed",
			"path", r.path,
			"failures", snap.ConsecutiveFailures,
			"error", err,
		)
		return
	}
	r.logger.Info("records reloaded", "path", r.path, "count", len(r.store.Snapshot().Records))
}

// reload loads the source once and records the outcome in store.
func reload(ctx context.Context, store *state.Store, source records.Source) error {
	recs, err := source.Load(ctx)
	if err != nil {
		store.Update(nil, "", err)
		return err
	}
	store.Update(recs, source.Name(), nil)
	return nil
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if base <= 0 {
		base = defaultReloadInterval
	}
	if failures <= 0 {
		return base
	}
	backoff := base
	for n := 0; n < failures; n++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}

type fileStamp struct {
	modTime time.Time
	size    int64
	exists  bool
}

func (s fileStamp) same(o fileStamp) bool {
	return s.exists == o.exists && s.size == o.size && s.modTime.Equal(o.modTime)
}

func stampOf(path string) fileStamp {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{modTime: info.ModTime(), size: info.Size(), exists: true}
}
