package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// truncate shortens value to fit limit terminal cells, adding an ellipsis
// when it has to cut.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 1 {
		return runewidth.Truncate(value, limit, "")
	}
	return runewidth.Truncate(value, limit, ellipsis)
}

// truncateMiddle keeps both ends of value, which suits file paths where the
// directory prefix and the file name both matter.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return runewidth.Truncate(value, limit, "")
	}
	keep := limit - runewidth.StringWidth(ellipsis)
	head := keep / 2
	tail := keep - head

	runes := []rune(value)
	var suffix []rune
	width := 0
	for i := len(runes) - 1; i >= 0; i-- {
		w := runewidth.RuneWidth(runes[i])
		if width+w > tail {
			break
		}
		width += w
		suffix = append([]rune{runes[i]}, suffix...)
	}
	return runewidth.Truncate(value, head, "") + ellipsis + string(suffix)
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.FillRight(s, width)
}
