package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Activity   key.Binding
	NavNext    key.Binding
	NavPrev    key.Binding
	Escape     key.Binding

	// Table
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Sorting
	SortID        key.Binding
	SortName      key.Binding
	SortDOB       key.Binding
	SortLastVisit key.Binding

	// Paging
	PrevPage key.Binding
	NextPage key.Binding
	JumpPage key.Binding

	// Records
	Search     key.Binding
	Menu       key.Binding
	Copy       key.Binding
	NewPatient key.Binding

	// Search/input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?/h", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Activity: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Activity log"),
		),
		NavNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next section"),
		),
		NavPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous section"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close menu"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First row"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last row"),
		),

		SortID: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Sort by patient ID"),
		),
		SortName: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Sort by name"),
		),
		SortDOB: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Sort by date of birth"),
		),
		SortLastVisit: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Sort by last visit"),
		),

		PrevPage: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("←", "Previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("→", "Next page"),
		),
		JumpPage: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "Jump to page"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search patients"),
		),
		Menu: key.NewBinding(
			key.WithKeys("enter", "m"),
			key.WithHelp("enter/m", "Row actions"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy patient ID"),
		),
		NewPatient: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "New patient"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.SortName, k.PrevPage, k.NextPage, k.Menu, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Table
		{k.Up, k.Down, k.Top, k.Bottom, k.Menu, k.Escape, k.Copy},
		// Sorting
		{k.SortID, k.SortName, k.SortDOB, k.SortLastVisit},
		// Paging and search
		{k.PrevPage, k.NextPage, k.JumpPage, k.Search},
		// General
		{k.NewPatient, k.NavNext, k.NavPrev, k.Activity, k.CycleTheme, k.Help, k.Quit},
	}
}

// helpSectionTitles names the FullHelp groups in the help overlay.
var helpSectionTitles = []string{"Table", "Sorting", "Paging", "General"}
