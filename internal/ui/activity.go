package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/logtail"
)

// activityState holds the in-app view of the log file.
type activityState struct {
	visible  bool
	follow   bool
	lines    []string
	err      error
	viewport viewport.Model
}

// activityMsg carries freshly read log lines.
type activityMsg struct {
	lines []string
	err   error
}

func readActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return activityMsg{}
		}
		lines, err := logtail.Read(path, ActivityLineLimit)
		return activityMsg{lines: lines, err: err}
	}
}

func (a *activityState) open(width, height int) {
	a.visible = true
	a.follow = true
	a.resize(width, height)
}

func (a *activityState) close() {
	a.visible = false
}

// resize fits the viewport inside the titled box: borders take two
// columns and two rows, the status line below takes one more row.
func (a *activityState) resize(width, height int) {
	w := max(width-2, 1)
	h := max(height-3, 1)
	if a.viewport.Width == 0 {
		a.viewport = viewport.New(w, h)
		return
	}
	a.viewport.Width = w
	a.viewport.Height = h
}

func (a *activityState) apply(msg activityMsg, theme Theme) {
	a.err = msg.err
	if msg.err != nil {
		return
	}
	a.lines = msg.lines
	a.viewport.SetContent(renderActivityLines(a.lines, theme))
	if a.follow {
		a.viewport.GotoBottom()
	}
}

// renderActivityLines colors parsed entries by level. Lines that are not
// JSON log entries are shown as they are.
func renderActivityLines(lines []string, theme Theme) string {
	styles := theme.Styles()
	if len(lines) == 0 {
		return styles.MutedText.Render("No log entries")
	}

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		entry, ok := logtail.ParseEntry(line)
		if !ok {
			b.WriteString(styles.Text.Render(line))
			continue
		}
		if !entry.Time.IsZero() {
			b.WriteString(styles.FaintText.Render(entry.Time.Local().Format("15:04:05")))
			b.WriteString(" ")
		}
		b.WriteString(styles.LevelStyle(entry.Level).Render(padRight(entry.Level, 5)))
		b.WriteString(" ")
		b.WriteString(styles.Text.Render(entry.Message))
		for _, attr := range entry.Attrs {
			b.WriteString(" ")
			b.WriteString(styles.MutedText.Render(attr.String()))
		}
	}
	return b.String()
}

func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Activity), key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.activity.close()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.activity.follow = true
		m.activity.viewport.GotoBottom()
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.activity.follow = false
		m.activity.viewport.GotoTop()
		return m, nil
	}

	var cmd tea.Cmd
	m.activity.viewport, cmd = m.activity.viewport.Update(msg)
	m.activity.follow = m.activity.viewport.AtBottom()
	return m, cmd
}

func (m Model) renderActivity() string {
	styles := m.theme.Styles()
	box := m.renderTitledBox("Activity", m.activity.viewport.View(), m.width, m.height-1, true)

	status := styles.FaintText.Render(truncateMiddle(m.logPath, max(m.width/2, 10)))
	switch {
	case m.logPath == "":
		status = styles.MutedText.Render("logging disabled")
	case m.activity.err != nil:
		status = styles.DangerText.Render("read failed: " + m.activity.err.Error())
	default:
		follow := "off"
		if m.activity.follow {
			follow = "on"
		}
		status += styles.FaintText.Render("  •  " + strconvLines(len(m.activity.lines)) + "  •  follow " + follow)
	}
	return box + "\n" + status
}

func strconvLines(n int) string {
	if n == 1 {
		return "1 line"
	}
	return strconv.Itoa(n) + " lines"
}
