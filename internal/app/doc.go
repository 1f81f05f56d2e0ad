// Package app wires configuration, logging, the records source, the shared
// store and the UI together. It is the composition root for cmd/roster.
//
// # Startup
//
//  1. config.Load reads ~/.config/roster/config.toml (defaults if missing);
//     command-line options override it.
//  2. setupLogging sends slog JSON records to the configured log file.
//  3. prefs.Load restores the theme and last sort.
//  4. records.NewSource picks the records file or the built-in sample.
//  5. The first load fills state.Store; a failure here aborts startup.
//  6. StartReloader keeps the store current in the background.
//  7. ui.Run takes over the terminal until the user quits.
//
// # Reloading
//
// The reloader watches the records file's directory with fsnotify, since
// editors commonly replace files by renaming a temporary one. Events for
// the file are coalesced for a short settle delay before reloading. A
// timer also compares the file's size and modification time every
// reload_seconds, which covers filesystems where events are unreliable.
// While loads fail the timer retries with exponential backoff:
//
//	interval × 2^failures, capped at 30s
//
// A failed load never clears the table. The store keeps the last good
// records and the UI shows the error in its status line.
package app
