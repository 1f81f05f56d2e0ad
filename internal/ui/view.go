package ui

import (
	"strings"
)

// renderMain renders the patients screen.
func (m Model) renderMain() string {
	table := m.table.View()
	if len(m.view.Items) == 0 {
		styles := m.theme.Styles()
		msg := "No patients"
		if m.view.Query != "" {
			msg = "No patients match \"" + m.view.Query + "\""
		}
		table = strings.SplitN(table, "\n", 2)[0] + "\n" + styles.MutedText.Render(msg)
	}
	box := m.renderTitledBox("Patients", table, m.width, m.table.Height()+3, true)

	return strings.Join([]string{
		m.renderHeader(),
		m.renderTitleRow(),
		m.renderSearchBar(),
		box,
		m.renderFooter(),
		m.renderStatus(),
		m.renderHelpBar(),
	}, "\n")
}
