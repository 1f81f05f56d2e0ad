package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/records"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/viewmodel"
)

// Options configures the UI.
type Options struct {
	Context          context.Context
	Store            *state.Store
	SourceName       string
	LogPath          string
	ResetPageOnQuery bool
	RefreshTick      time.Duration
	Prefs            prefs.Prefs
	PrefsPath        string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store       *state.Store
	sourceName  string
	logPath     string
	prefsPath   string
	refreshTick time.Duration
	logger      *slog.Logger
	copyText    func(string) error
	now         func() time.Time

	// UI state
	keys   keyMap
	help   help.Model
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	session    *viewmodel.Session
	view       viewmodel.View
	snapshot   state.Snapshot
	generation uint64

	// Widgets
	table     table.Model
	cursorID  string
	search    textinput.Model
	searching bool

	// Overlays
	navIndex int
	modal    Modal
	showHelp bool
	activity activityState

	// Transient status message
	flash   string
	flashAt time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	tick := opts.RefreshTick
	if tick <= 0 {
		tick = DefaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		store:       opts.Store,
		sourceName:  opts.SourceName,
		logPath:     opts.LogPath,
		prefsPath:   prefsPath,
		refreshTick: tick,
		logger:      slog.Default().With("component", "ui"),
		copyText:    clipboard.WriteAll,
		now:         time.Now,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		theme:       GetTheme(opts.Prefs.Theme),
		navIndex:    patientsNavIndex,
	}

	var recs []records.Record
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
		m.generation = m.snapshot.Generation
		recs = m.snapshot.Records
	}
	m.session = viewmodel.NewSession(recs, viewmodel.Options{ResetPageOnQuery: opts.ResetPageOnQuery})
	m.session.Restore(restoreState(opts.Prefs))

	m.search = newSearchInput(m.theme)
	m.table = newPatientTable(m.theme)
	m.applyTheme()
	m.view = m.session.View()
	m.syncTable()
	return m
}

// restoreState rebuilds the saved sort. Unknown values fall back to the
// defaults.
func restoreState(p prefs.Prefs) viewmodel.State {
	st := viewmodel.NewState()
	if p.Sort != "" {
		st.Sort.Key = viewmodel.ParseSortKey(p.Sort)
	}
	var order viewmodel.SortOrder
	if err := order.UnmarshalText([]byte(p.Order)); err == nil {
		st.Sort.Order = order
	}
	return st
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.refreshTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case activityMsg:
		m.activity.apply(msg, m.theme)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn("clipboard copy failed", "id", msg.id, "error", msg.err)
			m.setFlash("Copy failed: " + msg.err.Error())
		} else {
			m.setFlash("Copied patient ID #" + msg.id)
		}
		return m, nil

	case NewRecordRequested:
		m.logger.Info("new patient requested")
		m.setFlash("New Patient is not available yet")
		return m, nil

	case NavSelected:
		m.logger.Info("navigation selected", "section", msg.Label)
		if msg.Label != navItems[patientsNavIndex] {
			m.setFlash(msg.Label + " is not available yet")
		}
		return m, nil

	case rowActionMsg:
		m.handleRowAction(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.activity.visible {
		return m.renderActivity()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey processes keyboard input. Overlays take the key first.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.activity.visible {
		return m.handleActivityKey(msg)
	}
	if m.modal != nil {
		return m.handleModalKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Activity):
		m.activity.open(m.width, m.height)
		return m, readActivityCmd(m.logPath)

	case key.Matches(msg, m.keys.NavNext):
		m.navIndex = (m.navIndex + 1) % len(navItems)
		return m, emit(NavSelected{Label: navItems[m.navIndex]})

	case key.Matches(msg, m.keys.NavPrev):
		m.navIndex = (m.navIndex - 1 + len(navItems)) % len(navItems)
		return m, emit(NavSelected{Label: navItems[m.navIndex]})

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.NewPatient):
		return m, emit(NewRecordRequested{})

	case key.Matches(msg, m.keys.Copy):
		if rec, ok := m.selectedRecord(); ok {
			return m, copyCmd(m.copyText, rec.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		if rec, ok := m.selectedRecord(); ok {
			m.dispatch(viewmodel.ToggleMenu{ID: rec.ID})
		}
		return m, nil

	case key.Matches(msg, m.keys.JumpPage):
		if n := int(msg.String()[0] - '0'); n <= len(m.view.PageNumbers) {
			m.dispatch(viewmodel.SetPage{Page: n})
		}
		return m, nil
	}

	if cmd, ok := commandForKey(m.keys, msg); ok {
		m.dispatch(cmd)
		if _, sorted := cmd.(viewmodel.SetSort); sorted {
			m.savePrefs()
		}
		return m, nil
	}

	// Row movement within the page
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	m.rememberCursor()
	return m, cmd
}

// commandForKey maps sort, paging and dismiss keys to view-model commands.
func commandForKey(keys keyMap, msg tea.KeyMsg) (viewmodel.Command, bool) {
	switch {
	case key.Matches(msg, keys.SortID):
		return viewmodel.SetSort{Key: viewmodel.SortByID}, true
	case key.Matches(msg, keys.SortName):
		return viewmodel.SetSort{Key: viewmodel.SortByName}, true
	case key.Matches(msg, keys.SortDOB):
		return viewmodel.SetSort{Key: viewmodel.SortByDOB}, true
	case key.Matches(msg, keys.SortLastVisit):
		return viewmodel.SetSort{Key: viewmodel.SortByLastVisit}, true
	case key.Matches(msg, keys.PrevPage):
		return viewmodel.PrevPage{}, true
	case key.Matches(msg, keys.NextPage):
		return viewmodel.NextPage{}, true
	case key.Matches(msg, keys.Escape):
		return viewmodel.Dismiss{}, true
	}
	return nil, false
}

// dispatch applies cmd to the session and refreshes everything derived
// from the view.
func (m *Model) dispatch(cmd viewmodel.Command) {
	m.view = m.session.Dispatch(cmd)
	m.syncMenu()
	m.syncTable()
}

// syncMenu opens the row menu when the view says one is open and drops it
// when the view closed it or its record is gone.
func (m *Model) syncMenu() {
	id := m.view.OpenMenu
	current, isMenu := m.modal.(rowMenu)
	if id == "" {
		if isMenu {
			m.modal = nil
		}
		return
	}
	rec, ok := m.session.Lookup(id)
	if !ok {
		m.view = m.session.Dispatch(viewmodel.Dismiss{})
		if isMenu {
			m.modal = nil
		}
		return
	}
	if !isMenu || current.record.ID != id {
		m.modal = newRowMenu(rec)
	}
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd, closed := m.modal.Update(msg, m.keys)
	if !closed {
		m.modal = next
		return m, cmd
	}
	if _, isMenu := next.(rowMenu); isMenu {
		m.modal = nil
		m.dispatch(viewmodel.Dismiss{})
	} else {
		m.modal = nil
	}
	return m, cmd
}

func (m *Model) handleRowAction(msg rowActionMsg) {
	rec, ok := m.session.Lookup(msg.id)
	if !ok {
		m.setFlash(fmt.Sprintf("Patient #%s is no longer listed", msg.id))
		return
	}
	if msg.action == actionViewDetails {
		m.modal = newDetailModal(rec, m.now())
		return
	}
	m.logger.Info("row action requested", "action", msg.action.String(), "id", rec.ID)
	m.setFlash(fmt.Sprintf("%s is not available yet", msg.action))
}

// applySnapshot records the latest store contents and swaps in new records
// when a reload happened. Query, sort and page survive the swap.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	if snap.Generation == m.generation {
		return
	}
	m.generation = snap.Generation
	m.session.Replace(snap.Records)
	m.view = m.session.View()
	m.syncMenu()
	m.syncTable()
}

// selectedRecord returns the record under the table cursor.
func (m Model) selectedRecord() (records.Record, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.view.Items) {
		return records.Record{}, false
	}
	return m.view.Items[idx], true
}

// savePrefs stores the theme and current sort. Failures are only logged.
func (m Model) savePrefs() {
	st := m.session.State()
	p := prefs.Prefs{
		Theme: m.theme.Name,
		Sort:  string(st.Sort.Key),
		Order: st.Sort.Order.String(),
	}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save preferences failed", "path", m.prefsPath, "error", err)
	}
}

func (m *Model) setFlash(text string) {
	m.flash = text
	m.flashAt = m.now()
}

// handleTick processes the refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.activity.visible {
		cmds = append(cmds, readActivityCmd(m.logPath))
	}
	cmds = append(cmds, tickCmd(m.refreshTick))
	return m, tea.Batch(cmds...)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type copiedMsg struct {
	id  string
	err error
}

// NewRecordRequested is emitted by the New Patient button. Creating records
// is not supported; the request is logged.
type NewRecordRequested struct{}

// NavSelected is emitted when the nav bar selection moves. Only the
// patients section exists; other sections are logged.
type NavSelected struct {
	Label string
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func copyCmd(copyText func(string) error, id string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{id: id, err: copyText(id)}
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
