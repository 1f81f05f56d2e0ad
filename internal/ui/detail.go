package ui

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/records"
)

// detailModal shows one record read-only. Any key closes it.
type detailModal struct {
	record records.Record
	now    time.Time
}

func newDetailModal(rec records.Record, now time.Time) detailModal {
	return detailModal{record: rec, now: now}
}

func (d detailModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return d, nil, true
	}
	return d, nil, false
}

func (d detailModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	rec := d.record

	var b strings.Builder
	b.WriteString(theme.AvatarStyle(rec.ID).Render(rec.Avatar))
	b.WriteString("  ")
	b.WriteString(styles.Text.Bold(true).Render(rec.Name))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 36)))
	b.WriteString("\n")

	dob := rec.DOB
	if dob == "" {
		dob = "unknown"
	}
	if age, ok := ageOn(rec, d.now); ok {
		dob += "  (" + strconv.Itoa(age) + " yrs)"
	}
	lastVisit := rec.LastVisit
	if !rec.HasVisited() {
		lastVisit = "No visits yet"
	}

	rows := [][2]string{
		{"Patient ID", "#" + rec.ID},
		{"Date of Birth", dob},
		{"Contact", rec.Contact},
		{"Last Visit", lastVisit},
	}
	for _, row := range rows {
		b.WriteString(styles.MutedText.Render(padRight(row[0], 15)))
		b.WriteString(styles.Text.Render(row[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("press any key to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(44).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

// ageOn returns the age in whole years at now. Records with a malformed DOB
// or a birth date after now have no age.
func ageOn(rec records.Record, now time.Time) (int, bool) {
	born, ok := rec.BirthDate()
	if !ok || now.Before(born) {
		return 0, false
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age, true
}
