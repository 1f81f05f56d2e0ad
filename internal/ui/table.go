package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/records"
	"github.com/five82/roster/internal/viewmodel"
)

// patientColumn describes one table column. Sortable columns carry their
// sort key.
type patientColumn struct {
	title   string
	sortKey viewmodel.SortKey
	width   int
	value   func(rec records.Record, menuOpen bool) string
}

const (
	minNameWidth = 16
	cellPadding  = 2
)

var (
	idColumn = patientColumn{
		title: "Patient ID", sortKey: viewmodel.SortByID, width: 12,
		value: func(rec records.Record, _ bool) string { return "#" + rec.ID },
	}
	nameColumn = patientColumn{
		title: "Name", sortKey: viewmodel.SortByName,
		value: func(rec records.Record, _ bool) string { return padRight(rec.Avatar, 3) + rec.Name },
	}
	dobColumn = patientColumn{
		title: "Date of Birth", sortKey: viewmodel.SortByDOB, width: 15,
		value: func(rec records.Record, _ bool) string { return rec.DOB },
	}
	contactColumn = patientColumn{
		title: "Contact Details", width: 17,
		value: func(rec records.Record, _ bool) string { return rec.Contact },
	}
	lastVisitColumn = patientColumn{
		title: "Last Visit", sortKey: viewmodel.SortByLastVisit, width: 12,
		value: func(rec records.Record, _ bool) string { return rec.LastVisit },
	}
	actionColumn = patientColumn{
		title: "Action", width: 8,
		value: func(_ records.Record, menuOpen bool) string {
			if menuOpen {
				return "▾ open"
			}
			return "⋯"
		},
	}
)

// patientColumns returns the columns for the given terminal width. Narrow
// terminals lose the contact column; the name column takes the slack.
func patientColumns(width int) []patientColumn {
	cols := []patientColumn{idColumn, nameColumn, dobColumn, contactColumn, lastVisitColumn, actionColumn}
	if width > 0 && width < LayoutCompactWidth {
		cols = []patientColumn{idColumn, nameColumn, dobColumn, lastVisitColumn, actionColumn}
	}

	fixed := 0
	for _, c := range cols {
		fixed += c.width + cellPadding
	}
	fixed += cellPadding
	for i := range cols {
		if cols[i].sortKey == viewmodel.SortByName {
			cols[i].width = max(minNameWidth, width-fixed)
		}
	}
	return cols
}

// tableColumns renders column titles with the active sort arrow.
func tableColumns(cols []patientColumn, v viewmodel.View) []table.Column {
	out := make([]table.Column, len(cols))
	for i, c := range cols {
		title := c.title
		if c.sortKey != "" {
			if arrow := v.SortIndicator(c.sortKey); arrow != "" {
				title += " " + arrow
			}
		}
		out[i] = table.Column{Title: title, Width: c.width}
	}
	return out
}

// tableRows renders the current page.
func tableRows(cols []patientColumn, v viewmodel.View) []table.Row {
	rows := make([]table.Row, len(v.Items))
	for i, rec := range v.Items {
		row := make(table.Row, len(cols))
		menuOpen := v.MenuOpenFor(rec.ID)
		for j, c := range cols {
			row[j] = c.value(rec, menuOpen)
		}
		rows[i] = row
	}
	return rows
}

// newPatientTable builds the table widget. Paging belongs to the view
// model, so the table's own page bindings are disabled.
func newPatientTable(theme Theme) table.Model {
	keys := table.DefaultKeyMap()
	keys.PageUp.SetEnabled(false)
	keys.PageDown.SetEnabled(false)
	keys.HalfPageUp.SetEnabled(false)
	keys.HalfPageDown.SetEnabled(false)
	keys.GotoTop = key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first row"))
	keys.GotoBottom = key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last row"))

	return table.New(
		table.WithFocused(true),
		table.WithKeyMap(keys),
		table.WithStyles(tableStyles(theme)),
		table.WithHeight(viewmodel.PageSize+1),
	)
}

func tableStyles(theme Theme) table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(lipgloss.Color(theme.Muted)).
		Background(lipgloss.Color(theme.Surface)).
		Bold(true)
	styles.Cell = styles.Cell.
		Foreground(lipgloss.Color(theme.Text))
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color(theme.SelectionText)).
		Background(lipgloss.Color(theme.SelectionBg))
	return styles
}

// syncTable pushes the current view into the table widget. The cursor
// stays on the same record when it is still on the page.
func (m *Model) syncTable() {
	prevID := m.cursorID
	prevCursor := m.table.Cursor()

	cols := patientColumns(m.tableWidth())
	rows := tableRows(cols, m.view)

	// Clear rows first: the widget renders rows against the current columns.
	m.table.SetRows(nil)
	m.table.SetColumns(tableColumns(cols, m.view))
	m.table.SetRows(rows)

	cursor := min(prevCursor, len(rows)-1)
	for i, rec := range m.view.Items {
		if rec.ID == prevID {
			cursor = i
			break
		}
	}
	m.table.SetCursor(max(cursor, 0))
	m.rememberCursor()
}

// rememberCursor records which record the cursor is on.
func (m *Model) rememberCursor() {
	m.cursorID = ""
	if rec, ok := m.selectedRecord(); ok {
		m.cursorID = rec.ID
	}
}

// resize fits the table to the terminal.
func (m *Model) resize() {
	rows := viewmodel.PageSize
	if m.height > 0 {
		rows = max(1, min(rows, m.height-chromeLines))
	}
	m.table.SetHeight(rows + 1)
	m.table.SetWidth(m.tableWidth())
	m.search.Width = max(10, m.width/2)
	m.activity.resize(m.width, m.height)
	m.syncTable()
}

// tableWidth is the room inside the table box.
func (m Model) tableWidth() int {
	return max(m.width-2, 0)
}

// applyTheme restyles widgets after a theme change.
func (m *Model) applyTheme() {
	m.table.SetStyles(tableStyles(m.theme))
	styleSearchInput(&m.search, m.theme)

	styles := m.theme.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.FullSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText
}
