package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/records"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// rowAction is one entry of the per-row action menu.
type rowAction int

const (
	actionViewDetails rowAction = iota
	actionEdit
	actionSchedule
	actionDelete
)

var rowActions = []rowAction{actionViewDetails, actionEdit, actionSchedule, actionDelete}

func (a rowAction) String() string {
	switch a {
	case actionViewDetails:
		return "View Details"
	case actionEdit:
		return "Edit Patient"
	case actionSchedule:
		return "Schedule Appointment"
	case actionDelete:
		return "Delete Patient"
	default:
		return fmt.Sprintf("rowAction(%d)", int(a))
	}
}

// rowActionMsg is emitted when an action is picked from the row menu.
type rowActionMsg struct {
	action rowAction
	id     string
}

// rowMenu is the action menu for one record.
type rowMenu struct {
	record records.Record
	cursor int
}

func newRowMenu(rec records.Record) rowMenu {
	return rowMenu{record: rec}
}

func (r rowMenu) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil, false
	}
	switch {
	case key.Matches(km, keys.Up):
		if r.cursor > 0 {
			r.cursor--
		}
	case key.Matches(km, keys.Down):
		if r.cursor < len(rowActions)-1 {
			r.cursor++
		}
	case key.Matches(km, keys.Confirm):
		return r, emit(rowActionMsg{action: rowActions[r.cursor], id: r.record.ID}), true
	case key.Matches(km, keys.Escape), key.Matches(km, keys.Menu), key.Matches(km, keys.Quit):
		return r, nil, true
	}
	return r, nil, false
}

func (r rowMenu) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(theme.AvatarStyle(r.record.ID).Render(r.record.Avatar))
	b.WriteString(" ")
	b.WriteString(styles.Text.Bold(true).Render(r.record.Name))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("#" + r.record.ID))
	b.WriteString("\n\n")

	for i, action := range rowActions {
		label := action.String()
		style := styles.Text
		if action == actionDelete {
			style = styles.DangerText
		}
		if i == r.cursor {
			b.WriteString(styles.Selected.Render("› " + padRight(label, 22)))
		} else {
			b.WriteString(style.Render("  " + label))
		}
		b.WriteString("\n")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(1, 2).
		Width(32).
		Render(strings.TrimRight(b.String(), "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
