package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/viewmodel"
)

// pagerItem is one control of the pagination bar.
type pagerItem struct {
	label   string
	page    int
	active  bool
	enabled bool
}

const (
	prevLabel = "‹ Previous"
	nextLabel = "Next ›"
)

// pagerItems lays out Previous, the numbered buttons and Next for v.
// Previous and Next carry page 0.
func pagerItems(v viewmodel.View) []pagerItem {
	items := make([]pagerItem, 0, len(v.PageNumbers)+2)
	items = append(items, pagerItem{label: prevLabel, enabled: v.HasPrev})
	for _, n := range v.PageNumbers {
		items = append(items, pagerItem{
			label:   viewmodel.PageLabel(n),
			page:    n,
			active:  n == v.Current,
			enabled: true,
		})
	}
	items = append(items, pagerItem{label: nextLabel, enabled: v.HasNext})
	return items
}

// renderFooter renders the results summary on the left and the pager on
// the right.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	left := styles.MutedText.Render(m.view.Footer())

	parts := make([]string, 0, len(m.view.PageNumbers)+2)
	for _, item := range pagerItems(m.view) {
		switch {
		case item.active:
			parts = append(parts, styles.PageButtonActive.Render(item.label))
		case item.page > 0:
			parts = append(parts, styles.PageButton.Render(item.label))
		case item.enabled:
			parts = append(parts, styles.Text.Render(item.label))
		default:
			parts = append(parts, styles.FaintText.Render(item.label))
		}
	}
	right := strings.Join(parts, " ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(left + "  " + right)
	}
	return left + strings.Repeat(" ", gap) + right
}
