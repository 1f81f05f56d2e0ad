package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth drops the contact column below this width.
	LayoutCompactWidth = 90

	// LayoutNavWidth is the minimum width to show the full nav bar.
	LayoutNavWidth = 110
)

// chromeLines counts the rows around the table body: header, title,
// search, the box borders, the table header, footer, status and help.
const chromeLines = 9

// Activity view limits.
const (
	// ActivityLineLimit is how many log lines the activity view reads.
	ActivityLineLimit = 500
)

// Timing constants.
const (
	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second

	// FlashDuration is how long transient status messages stay visible.
	FlashDuration = 4 * time.Second
)
