package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// navItems are the sections of the top bar. Only Patients is implemented.
var navItems = []string{
	"Dashboard",
	"Scheduling",
	"Patients",
	"Communications",
	"Billing",
	"Referral",
	"Reports",
	"Settings",
}

const patientsNavIndex = 2

const appTitle = "Sample EMR"

// renderHeader renders the app title and the nav bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(3)

	parts := []string{bg.Render(appTitle, styles.Logo)}
	if m.width >= LayoutNavWidth {
		for i, label := range navItems {
			parts = append(parts, m.renderNavItem(label, i == m.navIndex, styles, bg))
		}
	} else {
		parts = append(parts,
			m.renderNavItem(navItems[m.navIndex], true, styles, bg),
			bg.Render("tab ›", styles.FaintText))
	}

	return styles.Header.Width(m.width).MaxWidth(m.width).Render(strings.Join(parts, sep))
}

func (m Model) renderNavItem(label string, active bool, styles Styles, bg BgStyle) string {
	if active {
		return bg.Render(label, styles.AccentText.Bold(true).Underline(true))
	}
	return bg.Render(label, styles.MutedText)
}

// renderTitleRow renders the page title with the New Patient button on the
// right.
func (m Model) renderTitleRow() string {
	styles := m.theme.Styles()
	left := styles.Text.Bold(true).Render("Patients List")
	right := styles.PageButtonActive.Render("[a] New Patient")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.NewStyle().MaxWidth(m.width).Render(left + strings.Repeat(" ", gap) + right)
}
