package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatus renders the data source line: where records came from, when
// they were loaded, reload failures and the transient flash message.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	var parts []string
	if m.sourceName != "" {
		parts = append(parts, styles.FaintText.Render(truncateMiddle(m.sourceName, 40)))
	}
	if !snap.LastLoaded.IsZero() {
		parts = append(parts, styles.MutedText.Render("loaded "+snap.LastLoaded.Format("15:04:05")))
	}
	if snap.LastError != nil {
		label := "reload failed"
		if snap.IsStale() {
			label = "STALE"
		}
		parts = append(parts,
			styles.DangerText.Bold(true).Render(label)+" "+
				styles.DangerText.Render(truncate(snap.LastError.Error(), 60)))
	}
	if m.flash != "" && m.now().Sub(m.flashAt) < FlashDuration {
		parts = append(parts, styles.WarningText.Render(m.flash))
	}

	sep := styles.FaintText.Render("  •  ")
	left := strings.Join(parts, sep)
	right := styles.FaintText.Render(m.theme.Name)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}
