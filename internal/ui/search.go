package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/viewmodel"
)

const searchPlaceholder = "Search by name, ID or contact"

func newSearchInput(theme Theme) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = searchPlaceholder
	ti.CharLimit = 64
	ti.Width = 40
	styleSearchInput(&ti, theme)
	return ti
}

func styleSearchInput(ti *textinput.Model, theme Theme) {
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint))
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
}

// handleSearchKey feeds keys to the search input. Every edit refilters the
// table; enter and esc leave the input and keep the query.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Escape) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if query := m.search.Value(); query != m.view.Query {
		m.dispatch(viewmodel.SetQuery{Query: query})
	}
	return m, cmd
}

// renderSearchBar renders the search row: the live input while typing,
// otherwise the active query or a hint.
func (m Model) renderSearchBar() string {
	styles := m.theme.Styles()
	var line string
	switch {
	case m.searching:
		line = m.search.View()
	case m.view.Query != "":
		line = styles.AccentText.Bold(true).Render("/ "+m.view.Query) + "  " +
			styles.MutedText.Render(matchesLabel(m.view.TotalCount))
	default:
		line = styles.FaintText.Render("/ " + searchPlaceholder)
	}
	return lipgloss.NewStyle().Width(m.width).MaxWidth(m.width).Render(line)
}

func matchesLabel(n int) string {
	switch n {
	case 0:
		return "no matches"
	case 1:
		return "1 match"
	default:
		return strconv.Itoa(n) + " matches"
	}
}
