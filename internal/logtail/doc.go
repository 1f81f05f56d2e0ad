// Package logtail reads the tail of roster's own log file for the activity
// overlay.
//
// Read keeps a ring buffer of the last maxLines lines, so memory stays
// bounded no matter how large the file grows. Lines come back oldest
// first. A missing file is not an error; the overlay simply shows nothing.
//
// The log is written by slog's JSON handler. FormatEntry turns each record
// into a compact single line:
//
//	{"time":"2025-03-01T14:32:15Z","level":"INFO","msg":"records reloaded","component":"reloader","count":15}
//	14:32:15 INFO records reloaded component=reloader count=15
//
// Attributes keep their order from the file. Lines that are not JSON pass
// through untouched.
package logtail
